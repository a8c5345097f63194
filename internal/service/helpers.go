package service

import (
	"strconv"
	"strings"

	"github.com/AlonsoDiaz/web-inventario/internal/model"

	"github.com/shopspring/decimal"
)

func nuevaActividad(ids IDGen, clock Clock, title, detail string) model.Actividad {
	return model.Actividad{
		ID:        ids.NewID(),
		Title:     title,
		Detail:    detail,
		CreatedAt: model.ISO(clock.Now()),
	}
}

func pluralizar(n int, singular, plural string) string {
	if n == 1 {
		return "1 " + singular
	}
	return strconv.Itoa(n) + " " + plural
}

// formatoCLP renders an amount with Chilean thousands separators for the
// activity log, e.g. 12500 -> "12.500".
func formatoCLP(monto decimal.Decimal) string {
	s := monto.String()
	negativo := strings.HasPrefix(s, "-")
	if negativo {
		s = s[1:]
	}
	entero, fraccion, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i := 0; i < len(entero); i++ {
		if i > 0 && (len(entero)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteByte(entero[i])
	}
	out := b.String()
	if fraccion != "" {
		out += "," + fraccion
	}
	if negativo {
		out = "-" + out
	}
	return out
}
