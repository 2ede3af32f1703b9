/*

Package msig defines the interfaces shared by every part of the multisig
transaction tooling: protocol messages, their JSON codec descriptors and the
opaque Any container used to embed one message in another.

Message types live in the x/ packages. They are collected into a closed
registry by the registry package, priced by the gas package and converted
from and to persisted JSON records by the txjson package.

*/

package msig
