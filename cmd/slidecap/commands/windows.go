package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xaionaro-go/slidecap/pkg/windowfinder"
)

func listWindows(cmd *cobra.Command, args []string) {
	ctx := cmd.Context()

	windows, err := windowfinder.ListWindows(ctx)
	assertNoError(ctx, err)

	if len(windows) == 0 {
		fmt.Println("no windows found")
		return
	}

	for _, w := range windows {
		fmt.Printf("%10d  %-24s %4dx%-4d  %s\n",
			w.ID, w.Owner, w.Bounds.Dx(), w.Bounds.Dy(), w.Title)
	}
}
