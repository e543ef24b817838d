package analysis

import (
	"context"

	"github.com/Veraticus/txscan/pkg/kmp"
	"github.com/Veraticus/txscan/pkg/types"
)

type signature struct {
	name  string
	runes []rune
}

// SignatureMatcher searches a fixed set of signatures in transmissions,
// one signature at a time.
type SignatureMatcher struct {
	signatures []signature
}

// NewSignatureMatcher creates a matcher over the given signature documents
func NewSignatureMatcher(signatures []types.Document) *SignatureMatcher {
	sm := &SignatureMatcher{
		signatures: make([]signature, 0, len(signatures)),
	}
	for _, doc := range signatures {
		sm.signatures = append(sm.signatures, signature{
			name:  doc.Identifier,
			runes: doc.Runes(),
		})
	}
	return sm
}

// MatchAll searches every signature in every transmission, signature-major:
// all transmissions for the first signature, then the next. texts[i] holds
// the code points of transmissions[i]. The context is checked before each
// search.
func (sm *SignatureMatcher) MatchAll(ctx context.Context, transmissions []types.Document, texts [][]rune) ([]types.SignatureMatch, error) {
	results := make([]types.SignatureMatch, 0, len(sm.signatures)*len(transmissions))
	for _, sig := range sm.signatures {
		for i, doc := range transmissions {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			results = append(results, sig.match(doc.Identifier, texts[i]))
		}
	}
	return results, nil
}

func (sig signature) match(transmission string, text []rune) types.SignatureMatch {
	result := types.SignatureMatch{
		Signature:    sig.name,
		Transmission: transmission,
	}
	if idx := kmp.Index(sig.runes, text); idx >= 0 {
		result.Found = true
		result.Position = idx + 1
	}
	return result
}

// Signatures returns the names of the active signatures
func (sm *SignatureMatcher) Signatures() []string {
	names := make([]string, len(sm.signatures))
	for i, sig := range sm.signatures {
		names[i] = sig.name
	}
	return names
}
