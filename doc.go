// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package loam provides a process-wide key/value store for run parameters
// read from plain "key = value" text files.
//
// Parameter files are line oriented: any line matching the assignment
// grammar installs a value, every other line is ignored, so comments and
// section headers need no syntax of their own. The reserved key "include"
// names another file whose assignments are merged inline at that point,
// and later assignments always win, which makes overlaying a base file
// with local overrides a one-liner.
//
// # Basic Usage
//
// Attach a store to a root file and read typed values from it:
//
//	store, err := loam.Load("run.ini")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	workers, err := store.GetInt("numWorkers", 4)
//	verbose, err := store.GetBool("verbose", false)
//	corpus, err := store.GetFile("corpusFile the corpus to process")
//
// A lookup key may carry a free-text description after its first space.
// Only the leading word is looked up; the full string appears in error
// messages, validation reports and interactive prompts, so one string
// serves all three:
//
//	store.Ensure(
//	    "databaseUser the user name for the database",
//	    "databasePassword the password for the database",
//	)
//
// # Structs
//
// The flat string entries can also be decoded into a tagged struct,
// including required-field enforcement:
//
//	type Params struct {
//	    Corpus  string        `param:"corpusFile" validate:"required"`
//	    Workers int           `param:"numWorkers"`
//	    Timeout time.Duration `param:"timeout"`
//	}
//
//	var p Params
//	err := store.Unmarshal(&p)
//
// # Interactive Fallback
//
// The request accessors fall back to prompting on a console when a key is
// undefined, optionally persisting the answer back into the root file:
//
//	user, err := store.GetOrRequestAndAdd("databaseUser", "Which database user should be used?")
//
// Prompting runs through the console package, so automated callers can
// script answers or bound the retry loops with WithRequestLimit.
package loam
