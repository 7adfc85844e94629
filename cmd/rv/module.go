package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/rv/debugs"
	"github.com/reusee/rv/logs"
	"github.com/reusee/rv/rvconfigs"
	"github.com/reusee/rv/rvvm"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs rvconfigs.Module
	VM      rvvm.Module
	Debugs  debugs.Module
}
