// Package kernel implements Kernel, the root scheduler that round-robins
// across registered Handlers (typically task.Handler instances, all sharing
// the Kernel's Context) and drives the shared cycle counter Priority and friends read.
package kernel
