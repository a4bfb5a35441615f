package products

import "strings"

// Kind is a coarse display grouping of catalog entries.
type Kind string

const (
	KindService       Kind = "service"
	KindManufacturing Kind = "manufacturing"
)

var serviceMarkers = []string{"SERVIÇO", "SERVICO", "REPROGRAMAÇÃO", "REPROGRAMACAO", "MANUTENÇÃO", "MANUTENCAO"}

// Classify tags a product as a service or a manufactured good by substring
// match over its free-text category and description. Best-effort only; the
// catalog has no authoritative kind field.
func Classify(category, description string) Kind {
	for _, text := range []string{category, description} {
		upper := strings.ToUpper(text)
		for _, marker := range serviceMarkers {
			if strings.Contains(upper, marker) {
				return KindService
			}
		}
	}
	return KindManufacturing
}
