package verdict

// Version is the current release of the Verdict library and CLI.
var Version = "0.2.0"
