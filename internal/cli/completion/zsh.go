package completion

import "bytes"

var (
	zshCompletionAppendPattern = []byte(`completions+=${comp}`)
	zshCompletionAppendQuoted  = []byte(`completions+=("${comp}")`)
	zshEvalRequestPattern      = []byte(`out=$(eval ${requestComp} 2>/dev/null)`)
	zshEvalRequestQuoted       = []byte(`out=$(eval "${requestComp}" 2>/dev/null)`)
)

func normalizeZshCompletion(script []byte) []byte {
	normalized := bytes.ReplaceAll(script, zshCompletionAppendPattern, zshCompletionAppendQuoted)
	normalized = bytes.ReplaceAll(normalized, zshEvalRequestPattern, zshEvalRequestQuoted)
	return normalized
}
