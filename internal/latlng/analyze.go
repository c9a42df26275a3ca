package latlng

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"latlng-api/internal/models"
)

// Format is the notation a coordinate was entered in.
type Format string

const (
	FormatDEG Format = "deg"
	FormatDMM Format = "dmm"
)

// Region is an open latitude/longitude box. The bounds themselves are outside the region.
type Region struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
}

// Contains reports whether lat/lng lies strictly inside r.
func (r Region) Contains(lat, lng float64) bool {
	return r.MinLat < lat && lat < r.MaxLat && r.MinLng < lng && lng < r.MaxLng
}

// Overlaps reports whether r and o share any point.
func (r Region) Overlaps(o Region) bool {
	return r.MinLat < o.MaxLat && o.MinLat < r.MaxLat && r.MinLng < o.MaxLng && o.MinLng < r.MaxLng
}

// Envelopes around Japan, checked in this order. They must not overlap.
var (
	DegreeEnvelope = Region{MinLat: 18, MaxLat: 50, MinLng: 120, MaxLng: 155}
	DMMEnvelope    = Region{MinLat: 1800, MaxLat: 5000, MinLng: 12000, MaxLng: 15500}
)

// Result is a successfully analyzed coordinate field.
type Result struct {
	models.LatLng
	Format Format `json:"format"`
}

// leadingNumber matches the longest decimal literal at the start of a field.
var leadingNumber = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)

// AnalyzeInput parses the text of a coordinate field and returns the pair
// in decimal degrees. ok is false when the text holds no usable pair or
// the pair is not near Japan.
func AnalyzeInput(text string) (ll models.LatLng, ok bool) {
	res, ok := Analyze(text)
	if !ok {
		return models.LatLng{}, false
	}
	return res.LatLng, true
}

// Analyze is AnalyzeInput that also reports which notation was detected.
//
// Fields are separated by commas or tabs and the first two numeric fields
// are taken as latitude then longitude. Anything else, such as N/E
// hemisphere markers, is skipped.
func Analyze(text string) (Result, bool) {
	fields := strings.Split(strings.ReplaceAll(text, "\t", ","), ",")
	if len(fields) < 2 {
		return Result{}, false
	}

	nums := make([]float64, 0, 2)
	for _, f := range fields {
		v, ok := parseLeadingFloat(f)
		if !ok {
			continue
		}
		nums = append(nums, v)
		if len(nums) == 2 {
			break
		}
	}
	if len(nums) != 2 {
		return Result{}, false
	}

	lat, lng := nums[0], nums[1]

	switch {
	case DegreeEnvelope.Contains(lat, lng):
		return Result{LatLng: models.LatLng{Latitude: lat, Longitude: lng}, Format: FormatDEG}, true
	case DMMEnvelope.Contains(lat, lng):
		return Result{LatLng: models.LatLng{Latitude: DMMToDeg(lat), Longitude: DMMToDeg(lng)}, Format: FormatDMM}, true
	}
	return Result{}, false
}

func parseLeadingFloat(s string) (float64, bool) {
	s = strings.TrimLeftFunc(s, isLeadingSpace)
	lit := leadingNumber.FindString(s)
	if lit == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		// literals such as 1e999 overflow to ±Inf, which is still a number
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return v, true
		}
		return 0, false
	}
	return v, true
}

// isLeadingSpace is unicode.IsSpace plus the byte order mark.
func isLeadingSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// TextDEG renders ll the way a DEG coordinate field shows it.
func TextDEG(ll models.LatLng) string {
	return fmt.Sprintf("%.5f,%.5f", ll.Latitude, ll.Longitude)
}

// TextDMM renders ll the way a DMM coordinate field shows it.
func TextDMM(ll models.LatLng) string {
	return fmt.Sprintf("%.5f,%.5f", DegToDMM(ll.Latitude), DegToDMM(ll.Longitude))
}
