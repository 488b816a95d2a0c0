package mongodb

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jhoicas/resource-api/internal/domain/repository"
)

// productFields traduce cada campo filtrable a la ruta del documento.
var productFields = map[repository.FilterField]string{
	repository.FilterName:     "name",
	repository.FilterAbout:    "about",
	repository.FilterMaxPrice: "price",
}

// buildFilter arma el filtro: strings como subcadena sin distinguir mayúsculas
// (regex con metacaracteres escapados), decimales como cota superior inclusiva.
func buildFilter(conds []repository.Condition, fields map[repository.FilterField]string) (bson.D, error) {
	filter := bson.D{}
	for _, c := range conds {
		path, ok := fields[c.Field]
		if !ok {
			return nil, fmt.Errorf("campo de filtro no soportado: %s", c.Field)
		}
		switch v := c.Value.(type) {
		case string:
			filter = append(filter, bson.E{Key: path, Value: primitive.Regex{Pattern: regexp.QuoteMeta(v), Options: "i"}})
		case decimal.Decimal:
			f, _ := v.Float64()
			filter = append(filter, bson.E{Key: path, Value: bson.D{{Key: "$lte", Value: f}}})
		default:
			return nil, fmt.Errorf("valor de filtro no soportado para %s: %T", c.Field, c.Value)
		}
	}
	return filter, nil
}
