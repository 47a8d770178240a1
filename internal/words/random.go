package words

import (
	"context"
	"crypto/rand"
	"log"
	"math/big"
	"slices"

	"github.com/samber/lo"

	"wordbank/internal/reqid"
	"wordbank/internal/types"
)

func cryptoIntn(n int64) (int64, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(n))
	if err != nil {
		return 0, err
	}
	return v.Int64(), nil
}

// RandomWord returns a uniformly random answer.
// It falls back to the first answer if ctx is already done or the random
// source fails.
func (p *Provider) RandomWord(ctx context.Context) types.WordEntry {
	return p.pick(ctx, p.answers)
}

// RandomWordExcluding returns a random answer that is not in completed.
// When every answer has been completed it picks from the full list and
// reports true so the caller can reset its completed list.
func (p *Provider) RandomWordExcluding(ctx context.Context, completed []string) (types.WordEntry, bool) {
	if len(completed) == 0 {
		return p.RandomWord(ctx), false
	}

	done := lo.Map(completed, func(w string, _ int) string { return Normalize(w) })
	available := lo.Filter(p.answers, func(e types.WordEntry, _ int) bool {
		return !slices.Contains(done, e.Word)
	})

	if len(available) == 0 {
		log.Printf("[INFO] %sAll words completed, reset needed. Total words: %d, Completed: %d",
			reqid.Prefix(ctx), len(p.answers), len(done))
		return p.RandomWord(ctx), true
	}

	selected := p.pick(ctx, available)
	log.Printf("[INFO] %sSelected word from %d available options (excluding %d completed)",
		reqid.Prefix(ctx), len(available), len(p.answers)-len(available))
	return selected, false
}

func (p *Provider) pick(ctx context.Context, entries []types.WordEntry) types.WordEntry {
	select {
	case <-ctx.Done():
		log.Printf("[WARN] %sRandom word selection cancelled: %v", reqid.Prefix(ctx), ctx.Err())
		return entries[0]
	default:
	}

	n, err := p.intn(int64(len(entries)))
	if err != nil {
		log.Printf("[WARN] %sError generating random number: %v, using fallback", reqid.Prefix(ctx), err)
		return entries[0]
	}
	return entries[n]
}
