// Package msigtest provides helpers and fixtures shared by tests.
package msigtest

// Valid bech32 addresses, usable as fixtures. Payloads are the first bytes of
// the sha256 of the owner name, so the same owner has the same payload on
// every chain.
const (
	Alice   = "cosmos190vqdjtlpcq27xslcveglfmr4ynfwg7gqmchsn"
	Bob     = "cosmos1sxmr0k8u6trd5c6eu6trzyapzux7090y3u5dan"
	Carol   = "cosmos1fsndjp6vylvfahjeyuxq4s2tw8s8rv2jzx6033"
	ValOne  = "cosmosvaloper1esweepj7swqv94txm3eyce3kjpg6e74rddmu2y"
	ValTwo  = "cosmosvaloper122899y8clu8tqvjlq3etnsdfaa86czczkyldjj"
	Wasm    = "cosmos1ejpjr43ht3y56pplm5pxpusmcrk9rkkvna4tklusnnwdxpqm0zls82k3wx"
	Bostrom = "bostrom190vqdjtlpcq27xslcveglfmr4ynfwg7grgvyw5"
	BostBob = "bostrom1sxmr0k8u6trd5c6eu6trzyapzux7090yj0q7r5"
	Osmo    = "osmo190vqdjtlpcq27xslcveglfmr4ynfwg7ggqt8xp"
)

// Particles are IPFS CIDv0 content identifiers.
const (
	ParticleOne = "QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG"
	ParticleTwo = "QmSnuWmxptJZdLJpKRarxBMS2Ju2oANVrgbr2xWbie9b2D"
)
