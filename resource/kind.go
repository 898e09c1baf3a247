package resource

import (
	"fmt"
	"strings"

	"github.com/crmarques/nfvctl/faults"
)

type Value = any

type Kind string

const (
	KindVIM        Kind = "vim"
	KindVNF        Kind = "vnf"
	KindVNFD       Kind = "vnfd"
	KindVNFFG      Kind = "vnffg"
	KindVNFFGD     Kind = "vnffgd"
	KindNFP        Kind = "nfp"
	KindSFC        Kind = "sfc"
	KindClassifier Kind = "classifier"
)

var knownKinds = []Kind{
	KindVIM,
	KindVNF,
	KindVNFD,
	KindVNFFG,
	KindVNFFGD,
	KindNFP,
	KindSFC,
	KindClassifier,
}

func Kinds() []Kind {
	return append([]Kind(nil), knownKinds...)
}

func ParseKind(value string) (Kind, error) {
	normalized := Kind(strings.ToLower(strings.TrimSpace(value)))
	for _, kind := range knownKinds {
		if kind == normalized {
			return kind, nil
		}
	}
	return "", faults.NewTypedError(faults.ValidationError, fmt.Sprintf("unknown resource kind %q", value), nil)
}

func (k Kind) String() string {
	return string(k)
}

// Collection is the plural name used both as the URL segment and as the
// envelope key of list responses.
func (k Kind) Collection() string {
	return string(k) + "s"
}

func (k Kind) Title() string {
	switch k {
	case KindClassifier:
		return "Classifier"
	default:
		return strings.ToUpper(string(k))
	}
}
