package differ

import (
	"strings"

	"github.com/opsdiff/opsdiff/internal/models"
)

// operationalStateWords are tokens whose appearance or disappearance in a
// replace pair marks a genuine state flip. A pair like "... is up" vs
// "... is down" scores around 0.84 on raw similarity, above the 0.8
// noise threshold, yet is exactly the kind of change this tool exists to
// surface, so the keyword check overrides the ratio.
var operationalStateWords = map[string]struct{}{
	"up": {}, "down": {}, "active": {}, "inactive": {},
	"established": {}, "idle": {}, "connect": {}, "connected": {},
	"disconnected": {}, "enabled": {}, "disabled": {}, "err-disabled": {},
	"shutdown": {}, "full": {}, "half": {}, "reachable": {}, "unreachable": {},
	"standby": {}, "init": {}, "failed": {}, "backup": {}, "master": {},
	"passive": {}, "listen": {}, "opensent": {}, "openconfirm": {},
}

// changeClassifier decides whether a modified block is a genuine content
// change (HIGH) or likely residual volatile noise (LOW). It is a pure
// function over the opcode list plus similarity scores, so the threshold
// and similarity algorithm stay swappable and independently testable.
type changeClassifier struct {
	threshold  float64
	similarity func(a, b string) float64
}

func newChangeClassifier(threshold float64, similarity func(a, b string) float64) *changeClassifier {
	return &changeClassifier{threshold: threshold, similarity: similarity}
}

// Classify applies the rules in order:
//  1. any pure insert/delete opcode (a line with no replace partner) is a
//     structural change: HIGH;
//  2. any replace pair below the similarity threshold: HIGH;
//  3. any replace pair whose changed tokens include an operational state
//     word: HIGH;
//  4. otherwise every difference is a near-identical line pair: LOW.
func (c *changeClassifier) Classify(ops []models.LineOpcode) models.Confidence {
	for _, op := range ops {
		switch op.Op {
		case models.OpInsert, models.OpDelete:
			return models.ConfidenceHigh
		case models.OpReplace:
			for i := range op.PreLines {
				pre, post := op.PreLines[i], op.PostLines[i]
				if c.similarity(pre, post) < c.threshold {
					return models.ConfidenceHigh
				}
				if hasStateWordChange(pre, post) {
					return models.ConfidenceHigh
				}
			}
		}
	}
	return models.ConfidenceLow
}

// hasStateWordChange reports whether any token present on one side of the
// pair but not the other is an operational state word.
func hasStateWordChange(pre, post string) bool {
	preTokens := tokenSet(pre)
	postTokens := tokenSet(post)

	for tok := range preTokens {
		if _, shared := postTokens[tok]; !shared {
			if _, state := operationalStateWords[tok]; state {
				return true
			}
		}
	}
	for tok := range postTokens {
		if _, shared := preTokens[tok]; !shared {
			if _, state := operationalStateWords[tok]; state {
				return true
			}
		}
	}
	return false
}

func tokenSet(line string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(line) {
		tok = strings.ToLower(strings.Trim(tok, ",.;:()[]"))
		if tok != "" {
			set[tok] = struct{}{}
		}
	}
	return set
}
