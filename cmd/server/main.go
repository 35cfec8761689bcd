package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/yungbote/studyforge-backend/internal/app"
	"github.com/yungbote/studyforge-backend/internal/platform/shutdown"
)

func main() {
	ctx, stop := shutdown.NotifyContext(context.Background())
	defer stop()

	a, err := app.New(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "startup failed: %v\n", err)
		os.Exit(1)
	}

	if err := a.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		a.Log.Error("Server exited with error", "error", err.Error())
		os.Exit(1)
	}
}
