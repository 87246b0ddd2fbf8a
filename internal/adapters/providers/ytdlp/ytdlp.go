// Package ytdlp resolves media ids to playable audio URLs by shelling out to yt-dlp
package ytdlp

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"navline/internal/core/gateway"
	"navline/internal/core/provider"
	perr "navline/internal/platform/errors"
)

// Runner executes a command and returns stdout; stderr is folded into the error
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// Options configures the resolver
type Options struct {
	Binary string // default "yt-dlp"
	Format string // default "bestaudio"
	Pool   *gateway.Pool
}

// Resolver implements provider.AudioResolver
type Resolver struct {
	o   Options
	run Runner
}

var _ provider.AudioResolver = (*Resolver)(nil)

// New builds a Resolver; the subprocess runs on o.Pool
func New(o Options) *Resolver {
	if o.Binary == "" {
		o.Binary = "yt-dlp"
	}
	if o.Format == "" {
		o.Format = "bestaudio"
	}
	if o.Pool == nil {
		o.Pool = gateway.NewPool(2)
	}
	return &Resolver{o: o, run: execRunner}
}

// WithRunner swaps the subprocess runner, used by tests
func (r *Resolver) WithRunner(run Runner) *Resolver {
	r.run = run
	return r
}

// Resolve prints title and stream url for id
func (r *Resolver) Resolve(ctx context.Context, id string) (provider.Audio, error) {
	id = strings.TrimSpace(id)
	if id == "" || strings.HasPrefix(id, "-") {
		return provider.Audio{}, perr.InvalidArgf("ytdlp: bad media id %q", id)
	}
	out, err := gateway.Run(ctx, r.o.Pool, func(ctx context.Context) ([]byte, error) {
		return r.run(ctx, r.o.Binary, "-e", "-g", "-f", r.o.Format, "--no-playlist", "--", id)
	})
	if err != nil {
		return provider.Audio{}, err
	}
	return parse(out)
}

// parse reads the title line then the first url line
func parse(out []byte) (provider.Audio, error) {
	var a provider.Audio
	for _, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
		case strings.HasPrefix(line, "http://"), strings.HasPrefix(line, "https://"):
			if a.URL == "" {
				a.URL = line
			}
		case a.Title == "" && a.URL == "":
			a.Title = line
		}
	}
	if a.URL == "" {
		return provider.Audio{}, perr.NotFoundf("ytdlp: no stream url")
	}
	return a, nil
}

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	if err == nil {
		return stdout.Bytes(), nil
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	return nil, classify(err, stderr.String())
}

// classify maps yt-dlp failures: gone media is NotFound, a missing binary is a
// config fault, anything else is worth a retry
func classify(err error, stderr string) error {
	if errors.Is(err, exec.ErrNotFound) {
		return perr.Wrap(err, perr.ErrorCodeUnknown, "ytdlp: binary not found")
	}
	msg := strings.ToLower(stderr)
	switch {
	case strings.Contains(msg, "video unavailable"),
		strings.Contains(msg, "private video"),
		strings.Contains(msg, "has been removed"),
		strings.Contains(msg, "requested format is not available"):
		return perr.Wrap(err, perr.ErrorCodeNotFound, "ytdlp: media unavailable")
	case strings.Contains(msg, "http error 429"):
		return perr.Wrap(err, perr.ErrorCodeTooManyRequests, "ytdlp: upstream throttled")
	default:
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "ytdlp: %s", lastLine(stderr))
	}
}

func lastLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return s
}
