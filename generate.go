package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

const (
	MACRO_SUFFIX = ".ijm"
	DATA_SUFFIX  = ".nd2"

	// relative to the output root
	LOG_DIR     = "logfiles"
	SCRIPTS_DIR = "scripts"
	RUN_ALL     = "run_all.sh"

	// relative to the data directory
	FIRST_DIR  = "tsefirst"
	ZEROTH_DIR = "tsezeroth"
	PNG_DIR    = "png"

	DEFAULT_SCRATCH = "/scratch"
	DEFAULT_RUNTIME = "03:30:00"
	DEFAULT_MEMORY  = "32G"
)

// Errors reported to the operator without failing the run
var (
	ErrDirNotFound = errors.New("Directory cannot be located.")
	ErrNoMacro     = errors.New("No .ijm files found in the target directory. " +
		"Please add a .ijm file to the target directory.")
)

// Job describes one input file and the paths of its submission
// script and log files. Script, OutLog, and ErrLog are relative to
// the output root, which is where run_all.sh is run from.
type Job struct {
	Filename string
	Base     string
	ID       string
	Script   string
	OutLog   string
	ErrLog   string
}

// NewJob derives the job for the input file filename
func NewJob(filename string) Job {
	base := TrimExt(filename)
	return Job{
		Filename: filename,
		Base:     base,
		ID:       JobID(base),
		Script:   filepath.Join(SCRIPTS_DIR, base+".sh"),
		OutLog:   filepath.Join(LOG_DIR, base+".out"),
		ErrLog:   filepath.Join(LOG_DIR, base+".err"),
	}
}

// Generator writes the Slurm scripts for a directory of .nd2 files.
// Fs is used for every filesystem access, OutRoot receives the
// logfiles and scripts directories and run_all.sh, and ScratchRoot is
// the prefix tried when the target directory does not exist as given.
type Generator struct {
	Conf        Config
	Fs          afero.Fs
	OutRoot     string
	ScratchRoot string
	Log         logrus.FieldLogger
}

// NewGenerator returns a Generator on the OS filesystem writing into
// the current directory
func NewGenerator(conf Config, log logrus.FieldLogger) *Generator {
	return &Generator{
		Conf:        conf,
		Fs:          afero.NewOsFs(),
		OutRoot:     ".",
		ScratchRoot: DEFAULT_SCRATCH,
		Log:         log,
	}
}

// Resolve returns directory if it exists, otherwise the same path
// under the user's scratch directory. ErrDirNotFound is returned if
// neither exists.
func (g *Generator) Resolve(directory string) (string, error) {
	if ok, _ := afero.IsDir(g.Fs, directory); ok {
		return directory, nil
	}
	scratch := filepath.Join(g.ScratchRoot, g.Conf.Username, directory)
	if ok, _ := afero.IsDir(g.Fs, scratch); ok {
		return scratch, nil
	}
	return "", ErrDirNotFound
}

// FindMacro returns the first entry in entries ending in
// MACRO_SUFFIX. entries are searched in the order given.
func FindMacro(entries []os.FileInfo) (string, error) {
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), MACRO_SUFFIX) {
			return e.Name(), nil
		}
	}
	return "", ErrNoMacro
}

// Jobs returns a Job for every entry ending in DATA_SUFFIX, in listing
// order
func Jobs(entries []os.FileInfo) []Job {
	jobs := make([]Job, 0, len(entries))
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), DATA_SUFFIX) {
			jobs = append(jobs, NewJob(e.Name()))
		}
	}
	return jobs
}

// Generate writes one submission script per .nd2 file in directory
// and the run_all.sh script that submits them. It returns the number
// of job scripts written. ErrDirNotFound and ErrNoMacro are returned
// before anything is created.
func (g *Generator) Generate(directory, runtime, memory string) (int, error) {
	dir, err := g.Resolve(directory)
	if err != nil {
		return 0, err
	}
	// this listing is used for the rest of the run
	entries, err := ListDir(g.Fs, dir)
	if err != nil {
		return 0, fmt.Errorf("listing %s: %w", dir, err)
	}
	macro, err := FindMacro(entries)
	if err != nil {
		return 0, err
	}
	g.Log.WithField("macro", macro).Info("Found .ijm file")

	for _, d := range []string{
		filepath.Join(g.OutRoot, LOG_DIR),
		filepath.Join(g.OutRoot, SCRIPTS_DIR),
		filepath.Join(dir, FIRST_DIR),
		filepath.Join(dir, ZEROTH_DIR),
		filepath.Join(dir, PNG_DIR),
	} {
		if err := EnsureDir(g.Fs, g.Log, d); err != nil {
			return 0, fmt.Errorf("creating %s: %w", d, err)
		}
	}

	jobs := Jobs(entries)
	for _, job := range jobs {
		var buf bytes.Buffer
		js := NewJobScript(g.Conf, job, dir, TrimExt(macro), runtime, memory)
		if err := WriteJob(&buf, js); err != nil {
			return 0, err
		}
		name := filepath.Join(g.OutRoot, job.Script)
		if err := afero.WriteFile(g.Fs, name, buf.Bytes(), 0644); err != nil {
			return 0, fmt.Errorf("writing %s: %w", name, err)
		}
		g.Log.WithFields(logrus.Fields{
			"file": job.Filename,
			"job":  js.Name,
		}).Debug("wrote job script")
	}

	var buf bytes.Buffer
	if err := WriteRunAll(&buf, jobs); err != nil {
		return 0, err
	}
	name := filepath.Join(g.OutRoot, RUN_ALL)
	if err := afero.WriteFile(g.Fs, name, buf.Bytes(), 0644); err != nil {
		return 0, fmt.Errorf("writing %s: %w", name, err)
	}
	return len(jobs), nil
}

// Summary returns the message printed after a successful run
func Summary(n int) string {
	return fmt.Sprintf("\n %d shell script files have been generated for batch processing.\n"+
		" Run 'chmod +x %s' to make it executable,\n"+
		" then run ./%s to submit all jobs.\n", n, RUN_ALL, RUN_ALL)
}
