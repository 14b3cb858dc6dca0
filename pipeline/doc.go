// Package pipeline runs sequence pipelines described in CUE documents.
//
// A document names a source, an optional Starlark script and a list of
// stages:
//
//	pipeline: {
//	    source: naturals: 1
//	    script: """
//	        def odd(n):
//	            return n % 2 == 1
//	        """
//	    stages: [
//	        {op: "filter", fn: "odd"},
//	        {op: "take", n: 3},
//	    ]
//	}
//
// Stages are compiled into a lazy sequence before anything runs. Each stage
// keeps the capability tag of its input up to date, so a stage that needs
// a bounded input (reverse, distinct, cycle, fold, tails) is rejected with
// [ErrUnbounded] at compile time rather than looping forever. The final
// sequence must be bounded as well, unless the document sets limit.
//
// The pluck and flatten stages address nested elements with dot paths such
// as "user.tags.0".
//
// Script functions run when elements are pulled. A function that fails
// aborts the run and its error is returned by [Runner.Run].
package pipeline
