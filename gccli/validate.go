package gccli

import (
	"context"

	"oss.terrastruct.com/xdefer"

	"oss.terrastruct.com/gridcanvas/lib/xmain"
)

func validateCmd(ctx context.Context, ms *xmain.State, args []string) (err error) {
	defer xdefer.Errorf(&err, "failed to validate")

	if len(args) != 1 {
		return xmain.UsageErrorf("validate must be passed exactly one layout file")
	}

	l, err := readLayout(ms, args[0])
	if err != nil {
		return err
	}
	ms.Log.Success.Printf("%s is valid (%d items)", args[0], len(l))
	return nil
}
