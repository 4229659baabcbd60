// Package capability provides µCoSm's capability modules: the small,
// independently reusable behaviors (Priority, Delay, Periodic, Status,
// StatusNotify, Signal, LinkedList, MemPool32, Parent, Coroutine,
// Coroutine2, plus the supplemental Content, Buffer, Lockable,
// ProcessQueue and AutoProcessQueue) that the task and kernel packages fold
// together into a task's behavior.
//
// Every capability implements Module's contract: Init plus the five hooks
// IsExeReady, IsDelReady, PreExe, PostExe and PreDel. Bundle1 through Bundle4
// compose N capabilities into one Module by folding each hook across them
// in field order — the Go-generics replacement for the original's
// template-based capability stacking, using the ModulePtr[T] pointer
// method-set constraint so bundles can still store capabilities by value.
package capability
