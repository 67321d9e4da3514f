// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/z5labs/loam"
	"github.com/z5labs/loam/app"
	"github.com/z5labs/loam/console"
	"github.com/z5labs/loam/lang"
)

func greet(ctx context.Context, store *loam.Store) error {
	name, err := store.GetOrRequestAndAdd("userName", "Please enter your name")
	if err != nil {
		return err
	}

	code, err := store.Get("language - the language to greet in", "en")
	if err != nil {
		return err
	}
	l, err := lang.New(code)
	if err != nil {
		return err
	}

	fmt.Printf("Hello, %s! Your greeting language is %s.\n", name, l.Name())
	return nil
}

func main() {
	err := app.New(
		"greet",
		app.Ini("greet.ini"),
		app.Console(console.Survey()),
		app.Run(greet),
	).Run(context.Background())
	if err != nil {
		os.Exit(1)
	}
}
