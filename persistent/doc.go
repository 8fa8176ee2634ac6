/*
Package persistent is the home of immutable containers with structural sharing.

Every operation on a persistent container returns a new container and leaves
its input untouched. New and old version share most of their memory, which
makes keeping old versions around cheap, and allows reading a container from
many goroutines without locks.

Sub-package vector provides an indexed sequence with fast access by position,
appending and prepending, slicing and concatenation.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package persistent
