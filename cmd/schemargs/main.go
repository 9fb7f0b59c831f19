// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/bartekus/schemargs/cmd/schemargs/commands"
	"github.com/bartekus/schemargs/cmd/schemargs/internal/clierr"
)

func main() {
	// fang prints the error; only the exit code is left to us.
	if err := fang.Execute(
		context.Background(),
		commands.NewRootCmd(),
		fang.WithVersion(commands.Version()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(clierr.ExitCodeOf(err))
	}
}
