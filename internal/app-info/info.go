package info

// NAME is the application name used for binaries and config directories
const NAME = "upscanner"

// VERSION is the current application version
const VERSION = "v1.0.0"
