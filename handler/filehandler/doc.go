// Package filehandler provides the file destination used by the sink
// worker, one FileHandler per category family.
//
// Two naming policies exist. Rewrite mode uses a fixed path
// (logs/<family>.log) that is truncated on every run. Append mode embeds
// the run start time in the name (logs/<family>_<stamp>.txt) and appends,
// so separate runs never overwrite each other.
//
// A FileHandler does nothing at construction; Open creates the file and
// must be called from the worker. Each WriteLine is flushed immediately,
// trading throughput for durability.
package filehandler
