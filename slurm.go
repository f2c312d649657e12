package main

import (
	"embed"
	"io"
	"text/template"

	"github.com/kballard/go-shellquote"
)

//go:embed job.tmpl run_all.tmpl
var Templates embed.FS

const (
	QUEUE      = "short"
	NODES      = 1
	TASKS      = 16
	JOB_PREFIX = "ij"
	SUBMIT_CMD = "sbatch"
)

// Move is one artifact produced by the macro and the subdirectory of
// the data directory it is moved into
type Move struct {
	Suffix string
	Dest   string
}

// MOVES lists the macro outputs in the order they are moved
var MOVES = []Move{
	{"_1.csv", FIRST_DIR},
	{"_1-protocol.txt", FIRST_DIR},
	{"_0.csv", ZEROTH_DIR},
	{"_0-protocol.txt", ZEROTH_DIR},
	{"_0.png", PNG_DIR},
	{"_1.png", PNG_DIR},
}

// JobScript is the data rendered into a single per-file submission
// script
type JobScript struct {
	Allocation string
	Queue      string
	Runtime    string
	Nodes      int
	Memory     string
	Tasks      int
	Name       string
	Username   string
	Directory  string
	Macro      string
	Filename   string
	Base       string
	Moves      []Move
}

// NewJobScript fills in the fixed scheduler values around the ones
// that vary per run and per file
func NewJobScript(conf Config, job Job, dir, macro, runtime, memory string) JobScript {
	return JobScript{
		Allocation: conf.Allocation,
		Queue:      QUEUE,
		Runtime:    runtime,
		Nodes:      NODES,
		Memory:     memory,
		Tasks:      TASKS,
		Name:       JOB_PREFIX + job.ID,
		Username:   conf.Username,
		Directory:  dir,
		Macro:      macro,
		Filename:   job.Filename,
		Base:       job.Base,
		Moves:      MOVES,
	}
}

type RunAll struct {
	Submit  string
	Jobs    []Job
	Scripts string
}

var (
	JOB_TEMPLATE     *template.Template
	RUN_ALL_TEMPLATE *template.Template
)

func init() {
	var err error
	JOB_TEMPLATE, err = template.ParseFS(Templates, "job.tmpl")
	if err != nil {
		panic(err)
	}
	RUN_ALL_TEMPLATE, err = template.New("run_all.tmpl").Funcs(
		template.FuncMap{"quote": quote},
	).ParseFS(Templates, "run_all.tmpl")
	if err != nil {
		panic(err)
	}
}

// quote joins args into a single shell-safe string, leaving plain
// words untouched
func quote(args ...string) string {
	return shellquote.Join(args...)
}

// WriteJob renders the submission script for one input file to w
func WriteJob(w io.Writer, js JobScript) error {
	return JOB_TEMPLATE.Execute(w, js)
}

// WriteRunAll renders the master script that submits jobs and then
// removes their scripts
func WriteRunAll(w io.Writer, jobs []Job) error {
	return RUN_ALL_TEMPLATE.Execute(w, RunAll{
		Submit:  SUBMIT_CMD,
		Jobs:    jobs,
		Scripts: SCRIPTS_DIR,
	})
}
