package app

import (
	"github.com/autoprobe/autoprobe/internal/registry"
	"github.com/autoprobe/autoprobe/modules/fragment"
	"github.com/autoprobe/autoprobe/modules/header"
	"github.com/autoprobe/autoprobe/modules/library"
	"github.com/autoprobe/autoprobe/modules/program"
)

// coreModules is the definitive list of check modules compiled into the
// autoprobe binary.
var coreModules = []registry.Module{
	&header.Module{},
	&library.Module{},
	&program.Module{},
	&fragment.Module{},
}
