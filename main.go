package main

import (
	"oss.terrastruct.com/gridcanvas/gccli"
	"oss.terrastruct.com/gridcanvas/lib/xmain"
)

func main() {
	xmain.Main(gccli.Run)
}
