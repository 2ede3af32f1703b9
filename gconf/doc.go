/*

Package gconf implements a configuration store intended to be used as a
persistent, in-database configuration.

A configuration is kept under a key derived from the name of the package it
belongs to. Each configuration validates itself before it is written.

The chain configuration describes the network that transactions are built
for: its identifier, the address prefix, the default gas price and the list
of assets used to print amounts in display units.

*/
package gconf
