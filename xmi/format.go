package xmi

import "fmt"

// Format selects the namespace profile of the generated documents.
// Structural content is identical across formats; only the UML
// vocabulary namespace differs.
type Format string

const (
	// Papyrus emits the Eclipse UML2 namespace understood by Eclipse
	// Papyrus.
	Papyrus Format = "papyrus"
	// MagicDraw emits the OMG standard UML namespace understood by
	// MagicDraw.
	MagicDraw Format = "magicdraw"
)

// Namespace URIs for the two vocabularies used in every document.
const (
	XMINamespace          = "http://www.omg.org/spec/XMI/20131001"
	PapyrusUMLNamespace   = "http://www.eclipse.org/uml2/5.0.0/UML"
	MagicDrawUMLNamespace = "http://www.omg.org/spec/UML/20131001"
)

// ParseFormat maps a format selector to a Format. Unrecognized
// selectors are a configuration error and fail immediately.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case Papyrus:
		return Papyrus, nil
	case MagicDraw:
		return MagicDraw, nil
	default:
		return "", fmt.Errorf("xmi: unknown format %q (expected %q or %q)", s, Papyrus, MagicDraw)
	}
}

func (f Format) umlNamespace() string {
	if f == MagicDraw {
		return MagicDrawUMLNamespace
	}
	return PapyrusUMLNamespace
}
