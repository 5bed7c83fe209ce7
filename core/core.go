package core

// Version is the lensgrid release version.
var Version = "0.1.0"

// GitSHA is the git checksum for the build, set by the build script.
var GitSHA = "0000000"

// ShowDebugMessages allows the process to print debug messages.
var ShowDebugMessages = false
