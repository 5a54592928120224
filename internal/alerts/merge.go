package alerts

// Merge concatenates alerts from both sources into one view. Like the course
// merge, the union is a plain concatenation: neither source may suppress the
// other's records, and provenance is preserved on every alert.
func Merge(legacy, api []Alert) []Alert {
	all := make([]Alert, 0, len(legacy)+len(api))
	all = append(all, legacy...)
	all = append(all, api...)
	return all
}

// ActiveOnly filters a merged view down to alerts currently in force.
func ActiveOnly(merged []Alert) []Alert {
	active := make([]Alert, 0, len(merged))
	for _, a := range merged {
		if a.Active {
			active = append(active, a)
		}
	}
	return active
}
