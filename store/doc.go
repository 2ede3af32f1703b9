/*
Package store persists transaction records in a key value database.

The database is one of the tendermint db backends: goleveldb for a
directory on disk or an in memory database for tests. Keys are grouped by
the prefix of the bucket that owns them.
*/
package store
