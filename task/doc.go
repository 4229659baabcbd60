// Package task implements TaskHandler, the fixed-capacity task pool that
// sits between a single capability bundle type and the Kernel that
// round-robins across handlers. See Handler.
package task
