// Package logging defines the logger that is passed explicitly into every
// function of the probe task.
//
// Two backends are provided: [NewStdLogger] over the standard log package
// for plain console output, and [NewLogrLogger] which forwards to a
// go-logr sink (for example a funcr JSON logger).
package logging
