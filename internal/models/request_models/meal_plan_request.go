package request_models

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

var errInvalidField = errors.New("missing or invalid field")

// MealPlanRequest is the POST /api/mealplan body. Numeric fields accept JSON
// numbers as well as numeric strings.
type MealPlanRequest struct {
	Weight        *json.Number `json:"weight" binding:"required"`
	Height        *json.Number `json:"height" binding:"required"`
	UserLat       *json.Number `json:"userLat" binding:"required"`
	UserLon       *json.Number `json:"userLon" binding:"required"`
	Preferences   []string     `json:"preferences"`
	Goal          string       `json:"goal"`
	PreferredFood string       `json:"preferredFood"`
	UserID        string       `json:"user_id"`
}

// MealPlanInput is a validated MealPlanRequest.
type MealPlanInput struct {
	WeightLbs     float64
	HeightInches  float64
	Lat           float64
	Lon           float64
	Preferences   []string
	Goal          string
	PreferredFood string
	UserID        string
}

// ToInput parses the numeric fields. Weight and height must be positive;
// coordinates are taken as given.
func (r MealPlanRequest) ToInput() (MealPlanInput, error) {
	weight, err := parseNumber(r.Weight)
	if err != nil || weight <= 0 {
		return MealPlanInput{}, errInvalidField
	}
	height, err := parseNumber(r.Height)
	if err != nil || height <= 0 {
		return MealPlanInput{}, errInvalidField
	}
	lat, err := parseNumber(r.UserLat)
	if err != nil {
		return MealPlanInput{}, errInvalidField
	}
	lon, err := parseNumber(r.UserLon)
	if err != nil {
		return MealPlanInput{}, errInvalidField
	}

	prefs := r.Preferences
	if prefs == nil {
		prefs = []string{}
	}
	goal := strings.ToLower(strings.TrimSpace(r.Goal))
	if goal == "" {
		goal = "maintain"
	}

	return MealPlanInput{
		WeightLbs:     weight,
		HeightInches:  height,
		Lat:           lat,
		Lon:           lon,
		Preferences:   prefs,
		Goal:          goal,
		PreferredFood: r.PreferredFood,
		UserID:        strings.TrimSpace(r.UserID),
	}, nil
}

func parseNumber(n *json.Number) (float64, error) {
	if n == nil {
		return 0, errInvalidField
	}
	return strconv.ParseFloat(n.String(), 64)
}
