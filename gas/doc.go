/*
Package gas implements the gas estimation of a transaction and the fee
calculation from a gas limit and a gas price.

The estimate is deterministic: every message type has a fixed cost declared
in a static table and every transaction is charged a flat overhead. A message
type without a table entry cannot be estimated. Such a type is a hard error
and never a default cost, because an underestimated gas limit results in a
transaction that fails on chain after collecting all signatures.
*/
package gas
