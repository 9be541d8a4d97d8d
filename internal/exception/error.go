package exception

import "errors"

// ErrDependencyMissing the nmap binary could not be found
var ErrDependencyMissing = errors.New("nmap is not installed")

// ErrInputNotFound the subnet list file does not exist
var ErrInputNotFound = errors.New("input file not found")

// ErrSubnetScanFailure a single subnet's discovery session failed
var ErrSubnetScanFailure = errors.New("subnet scan failed")

// ErrRecordNotFound custom database error for failure to find record
var ErrRecordNotFound = errors.New("record not found")
