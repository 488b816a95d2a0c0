package postgres

import (
	"fmt"
	"strings"

	"github.com/jhoicas/resource-api/internal/domain/repository"
)

// Predicados permitidos por campo. El valor siempre viaja como parámetro posicional.
var (
	productClauses = map[repository.FilterField]string{
		repository.FilterName:     "p.name ILIKE $%d",
		repository.FilterAbout:    "p.about ILIKE $%d",
		repository.FilterMaxPrice: "p.price <= $%d",
	}
	userClauses = map[repository.FilterField]string{
		repository.FilterUsername: "username ILIKE $%d",
		repository.FilterEmail:    "email ILIKE $%d",
	}
)

// buildWhere arma "WHERE a AND b" con placeholders a partir de $1.
// Los valores string se buscan como subcadena (ILIKE %v%, con comodines escapados).
func buildWhere(conds []repository.Condition, clauses map[repository.FilterField]string) (string, []any, error) {
	if len(conds) == 0 {
		return "", nil, nil
	}
	parts := make([]string, 0, len(conds))
	args := make([]any, 0, len(conds))
	for _, c := range conds {
		clause, ok := clauses[c.Field]
		if !ok {
			return "", nil, fmt.Errorf("campo de filtro no soportado: %s", c.Field)
		}
		value := c.Value
		if s, isString := value.(string); isString {
			value = "%" + escapeLike(s) + "%"
		}
		args = append(args, value)
		parts = append(parts, fmt.Sprintf(clause, len(args)))
	}
	return " WHERE " + strings.Join(parts, " AND "), args, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
