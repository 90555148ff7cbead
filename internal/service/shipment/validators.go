package shipment

import (
	"strings"

	"fastship/internal/entities"
)

func isValidContent(content string) bool {
	return strings.TrimSpace(content) != ""
}

func isValidWeight(weight float64) bool {
	return weight > 0 && weight <= entities.MaxShipmentWeight
}

func isValidZip(zip int64) bool {
	return zip > 0
}

func isValidRating(rating int) bool {
	return rating >= 1 && rating <= 5
}
