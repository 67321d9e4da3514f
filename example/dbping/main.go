// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/z5labs/loam"
	"github.com/z5labs/loam/app"
	"github.com/z5labs/loam/db"
)

func ping(ctx context.Context, store *loam.Store) error {
	handle, err := db.OpenFromStore(store)
	if err != nil {
		return err
	}
	defer handle.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = handle.PingContext(pingCtx)
	if err != nil {
		return err
	}

	fmt.Println("database is reachable")
	return nil
}

func main() {
	err := app.New(
		"dbping",
		app.Ini("db.ini"),
		app.Run(ping),
	).Run(context.Background())
	if err != nil {
		os.Exit(1)
	}
}
