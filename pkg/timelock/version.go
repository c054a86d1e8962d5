package timelock

// Version is the library version reported through the C boundary. Release
// builds override it via
// -ldflags "-X github.com/ideal-lab5/timelock/pkg/timelock.Version=x.y.z".
var Version = "0.1.0"
