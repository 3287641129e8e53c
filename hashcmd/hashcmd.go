// Package hashcmd resolves the hash commands and post links of a committed
// line into the values stored with the post.
package hashcmd

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/Drolfothesgnir/chanpost/markup"
)

// Answers are the default #8ball answers.
var Answers = []string{
	"Yes",
	"No",
	"Maybe",
	"It can't be helped",
	"Hell yeah, motherfucker!",
	"Ara ara",
	"Why not?",
	"Ask again later",
	"Sure",
	"Definitely not",
}

// PostIndex answers questions about stored posts. db.Store implements it.
type PostIndex interface {
	GetPostOPs(ctx context.Context, ids []int64) (map[int64]int64, error)
	CountPosts(ctx context.Context) (int64, error)
}

// Counter keeps the per-board #pyu counters. tmpstore.Store implements it.
type Counter interface {
	IncrPyu(ctx context.Context, board string) (int64, error)
}

type Resolver struct {
	posts   PostIndex
	counter Counter
	rand    *rand.Rand
	now     func() time.Time
	answers []string
}

type Option func(*Resolver)

// WithRand makes dice, flips and answers come from r.
func WithRand(r *rand.Rand) Option {
	return func(res *Resolver) {
		res.rand = r
	}
}

// WithClock replaces time.Now for #sw start times.
func WithClock(now func() time.Time) Option {
	return func(res *Resolver) {
		res.now = now
	}
}

// WithAnswers replaces the #8ball answers.
func WithAnswers(answers []string) Option {
	return func(res *Resolver) {
		if len(answers) != 0 {
			res.answers = answers
		}
	}
}

func NewResolver(posts PostIndex, counter Counter, opts ...Option) *Resolver {
	res := &Resolver{
		posts:   posts,
		counter: counter,
		rand:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now:     time.Now,
		answers: Answers,
	}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Result is what a committed line adds to its post.
type Result struct {
	Commands markup.Commands
	Links    map[uint64]markup.LinkData
}

// Resolve scans the body of p and resolves everything not stored yet: hash
// markers past the already resolved commands and references to posts
// missing from p.Links. References to unknown posts are left unresolved and
// render as dead links.
func (res *Resolver) Resolve(ctx context.Context, p *markup.Post) (Result, error) {
	found := markup.Scan(p.Body)

	var result Result
	if len(found.Markers) > len(p.Commands) {
		for _, m := range found.Markers[len(p.Commands):] {
			cmd, err := res.command(ctx, m, p.Board)
			if err != nil {
				return Result{}, fmt.Errorf("resolve #%s: %w", m.Source, err)
			}
			result.Commands = append(result.Commands, cmd)
		}
	}

	links, err := res.links(ctx, found.Refs, p)
	if err != nil {
		return Result{}, err
	}
	result.Links = links

	return result, nil
}

func (res *Resolver) links(ctx context.Context, refs []uint64, p *markup.Post) (map[uint64]markup.LinkData, error) {
	var ids []int64
	for _, ref := range refs {
		if _, ok := p.Links[ref]; ok || ref == p.ID || ref > math.MaxInt64 {
			continue
		}
		ids = append(ids, int64(ref))
	}
	if len(ids) == 0 {
		return nil, nil
	}
	slices.Sort(ids)
	ids = slices.Compact(ids)

	ops, err := res.posts.GetPostOPs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve links: %w", err)
	}
	if len(ops) == 0 {
		return nil, nil
	}

	links := make(map[uint64]markup.LinkData, len(ops))
	for id, op := range ops {
		links[uint64(id)] = markup.LinkData{OP: uint64(op)}
	}
	return links, nil
}

func (res *Resolver) command(ctx context.Context, m markup.Marker, board string) (markup.Command, error) {
	switch m.Kind {
	case markup.CommandDice:
		rolls := make([]uint16, m.Rolls)
		for i := range rolls {
			rolls[i] = uint16(res.rand.IntN(m.Faces) + 1)
		}
		return markup.DiceRoll{Rolls: rolls}, nil

	case markup.CommandFlip:
		return markup.CoinFlip{Heads: res.rand.IntN(2) == 1}, nil

	case markup.CommandEightBall:
		return markup.EightBall{Answer: res.answers[res.rand.IntN(len(res.answers))]}, nil

	case markup.CommandPyu:
		n, err := res.counter.IncrPyu(ctx, board)
		if err != nil {
			return nil, err
		}
		return markup.PyuCounter{Count: uint64(n)}, nil

	case markup.CommandPostCount:
		n, err := res.posts.CountPosts(ctx)
		if err != nil {
			return nil, err
		}
		return markup.PostCounter{Count: uint64(n)}, nil

	case markup.CommandSyncWatch:
		return syncWatch(m, res.now()), nil
	}

	return nil, fmt.Errorf("unknown command kind %v", m.Kind)
}

// syncWatch starts the watch at now shifted by the marker's offset and ends
// it after the given duration.
func syncWatch(m markup.Marker, now time.Time) markup.SyncWatch {
	start := now.Unix() + m.Offset
	if start < 0 {
		start = 0
	}
	duration := int64(m.Hours*3600 + m.Minutes*60 + m.Seconds)
	return markup.SyncWatch{Params: [5]uint64{
		m.Hours,
		m.Minutes,
		m.Seconds,
		uint64(start),
		uint64(start + duration),
	}}
}
