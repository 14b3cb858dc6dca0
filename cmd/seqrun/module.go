package main

import (
	"github.com/reusee/dscope"

	"github.com/hasbyte1/go-seqs/pipeline"
)

type Module struct {
	dscope.Module
	Pipeline pipeline.Module
}
