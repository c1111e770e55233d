package assetkit

// Version is the library version, also reported by the metro CLI.
const Version = "0.1.0"
