package app

import (
	"github.com/vk/tickseq/internal/registry"
	"github.com/vk/tickseq/modules/count"
	"github.com/vk/tickseq/modules/print"
	"github.com/vk/tickseq/modules/wait"
)

// coreModules is the definitive list of all action modules that are
// compiled into the tickseq binary.
var coreModules = []registry.Module{
	&count.Module{},
	&print.Module{},
	&wait.Module{},
}
