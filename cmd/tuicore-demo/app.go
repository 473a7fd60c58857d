package main

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"
	"time"

	tui "github.com/grindlemire/tuicore"
)

const (
	maxRunning = 4
	logRows    = 5
	logKeep    = 100
	barWidth   = 20
)

var jobNames = []string{"fetch", "compile", "lint", "test", "package", "upload", "index", "migrate"}

type job struct {
	id       int
	name     string
	progress int
	started  time.Time
}

type logEntry struct {
	seq  int
	text string
}

// app holds the demo state. Every method runs on the loop goroutine.
type app struct {
	graph   *tui.Graph
	jobs    *tui.Cell[[]job]
	done    *tui.Cell[[]string]
	logs    *tui.Cell[[]logEntry]
	paused  *tui.Cell[bool]
	config  *tui.Cell[tui.Config]
	summary *tui.Memo[string]

	heights *tui.HeightCache
	nextID  int
	nextSeq int
}

func newApp(g *tui.Graph, cfg tui.Config) *app {
	root := g.Root()
	a := &app{
		graph:   g,
		jobs:    tui.NewCellFunc[[]job](root, nil, slices.Equal[[]job], tui.Named("jobs")),
		done:    tui.NewCellFunc[[]string](root, nil, slices.Equal[[]string], tui.Named("done")),
		logs:    tui.NewCellFunc[[]logEntry](root, nil, slices.Equal[[]logEntry], tui.Named("logs")),
		paused:  tui.NewCell(root, false, tui.Named("paused")),
		config:  tui.NewCellFunc(root, cfg, nil, tui.Named("config")),
		heights: tui.NewHeightCache(),
	}
	a.summary = tui.NewMemo(root, func() string {
		state := "running"
		if a.paused.Get() {
			state = "paused"
		}
		return fmt.Sprintf("%d %s, %d finished", len(a.jobs.Get()), state, len(a.done.Get()))
	}, tui.Named("summary"))
	return a
}

// step advances every running job and retires the finished ones.
func (a *app) step() {
	if a.paused.Peek() {
		return
	}
	a.graph.Batch(func() {
		var running []job
		for _, j := range a.jobs.Peek() {
			j.progress = min(100, j.progress+rand.IntN(12))
			if j.progress < 100 {
				running = append(running, j)
				continue
			}
			line := fmt.Sprintf("✓ %s #%d finished in %s", j.name, j.id, time.Since(j.started).Round(100*time.Millisecond))
			a.done.Update(func(d []string) []string { return append(slices.Clip(d), line) })
			a.log(fmt.Sprintf("%s #%d done", j.name, j.id))
		}
		a.jobs.Set(running)
		if len(running) < maxRunning && rand.IntN(4) == 0 {
			a.addJob()
		}
	})
}

func (a *app) addJob() {
	a.nextID++
	j := job{id: a.nextID, name: jobNames[rand.IntN(len(jobNames))], started: time.Now()}
	a.jobs.Update(func(js []job) []job { return append(slices.Clip(js), j) })
	a.log(fmt.Sprintf("started %s #%d", j.name, j.id))
}

func (a *app) togglePause() {
	a.paused.Update(func(p bool) bool { return !p })
}

// log appends a line to the log panel and forgets cached heights of lines
// that scroll out of it.
func (a *app) log(text string) {
	a.nextSeq++
	entries := append(slices.Clip(a.logs.Peek()), logEntry{seq: a.nextSeq, text: text})
	if over := len(entries) - logKeep; over > 0 {
		for _, e := range entries[:over] {
			a.heights.Invalidate(strconv.Itoa(e.seq))
		}
		entries = entries[over:]
	}
	a.logs.Set(entries)
}

func (a *app) view(t *tui.Tree) tui.NodeID {
	cfg := a.config.Get()

	var finished []tui.NodeID
	for _, line := range a.done.Get() {
		finished = append(finished, t.Text(line, tui.WithStyle(cfg.Style("done"))))
	}
	history := t.Static("finished", tui.Children(finished...))

	var rows []tui.NodeID
	for _, j := range a.jobs.Get() {
		rows = append(rows, a.jobRow(t, j, cfg))
	}
	if len(rows) == 0 {
		rows = append(rows, t.Text("no jobs running", tui.WithStyle(cfg.Style("muted"))))
	}
	jobs := t.Box(
		tui.WithDirection(tui.Column),
		tui.WithBorder(cfg.BorderStyle()),
		tui.WithBorderStyle(cfg.Style("border")),
		tui.WithPaddingEdges(tui.EdgeSymmetric(0, 1)),
		tui.Children(rows...),
	)

	footer := t.Box(
		tui.WithGap(2),
		tui.Children(
			t.Text(a.summary.Get(), tui.WithStyle(cfg.Style("title"))),
			t.Spacer(),
			t.Text("a add  p pause  q quit", tui.WithStyle(cfg.Style("muted"))),
		),
	)

	return t.Box(
		tui.WithDirection(tui.Column),
		tui.Children(history, jobs, a.logPanel(t, cfg), footer),
	)
}

func (a *app) jobRow(t *tui.Tree, j job, cfg tui.Config) tui.NodeID {
	filled := j.progress * barWidth / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	return t.Box(
		tui.WithGap(1),
		tui.Children(
			t.Text(fmt.Sprintf("%s #%d", j.name, j.id), tui.WithWidth(tui.Fixed(12)), tui.WithTruncate()),
			t.Text(bar, tui.WithStyle(cfg.Style("bar"))),
			t.Text(fmt.Sprintf("%3d%%", j.progress), tui.WithTextAlign(tui.TextAlignRight)),
		),
	)
}

// logPanel shows the newest log lines that fit in logRows rows. Wrapped
// heights come from the cache, so only new lines or a new width are
// measured.
func (a *app) logPanel(t *tui.Tree, cfg tui.Config) tui.NodeID {
	inner := max(1, t.Caps().Width-2)
	entries := a.logs.Get()

	var shown []tui.NodeID
	used := 0
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		id := t.Text(e.text, tui.WithStyle(cfg.Style("muted")))
		h := a.heights.Height(strconv.Itoa(e.seq), t.Fingerprint(id), inner, func(w int) int {
			_, h := t.Measure(int(id), w)
			return h
		})
		if used+h > logRows {
			break
		}
		used += h
		shown = append(shown, id)
	}
	slices.Reverse(shown)

	return t.Box(
		tui.WithDirection(tui.Column),
		tui.WithHeight(tui.Fixed(logRows)),
		tui.WithPaddingEdges(tui.EdgeSymmetric(0, 1)),
		tui.WithOverflow(tui.OverflowHidden),
		tui.Children(shown...),
	)
}
