package service

import "github.com/pkordes/wayfarer/internal/domain"

type templateCategory struct {
	name  string
	items []domain.ChecklistItem
}

func item(id, text string) domain.ChecklistItem {
	return domain.ChecklistItem{ID: id, Text: text}
}

// checklistTemplate is the master pre-departure checklist, in display order.
var checklistTemplate = []templateCategory{
	{"Vehicle", []domain.ChecklistItem{
		item("vehicle-1", "Check engine oil and coolant levels"),
		item("vehicle-2", "Check tyre pressures, including the spare"),
		item("vehicle-3", "Inspect belts, hoses and battery terminals"),
		item("vehicle-4", "Fill fuel tank and jerry cans"),
		item("vehicle-5", "Test lights, indicators and brake lights"),
	}},
	{"Recovery", []domain.ChecklistItem{
		item("recovery-1", "Snatch strap and rated shackles"),
		item("recovery-2", "Traction boards"),
		item("recovery-3", "Tyre deflator, gauge and air compressor"),
		item("recovery-4", "Shovel"),
		item("recovery-5", "Tyre repair kit"),
	}},
	{"Camping", []domain.ChecklistItem{
		item("camping-1", "Tent or rooftop tent, with pegs and poles"),
		item("camping-2", "Sleeping bags and pillows"),
		item("camping-3", "Camp chairs and table"),
		item("camping-4", "Head torches and lantern"),
	}},
	{"Kitchen", []domain.ChecklistItem{
		item("kitchen-1", "Stove and gas bottle"),
		item("kitchen-2", "Fridge running and stocked"),
		item("kitchen-3", "Drinking water, at least 5 L per person per day"),
		item("kitchen-4", "Cookware, utensils and washing-up kit"),
	}},
	{"Safety", []domain.ChecklistItem{
		item("safety-1", "First aid kit restocked"),
		item("safety-2", "Satellite communicator or PLB charged"),
		item("safety-3", "Fire extinguisher"),
		item("safety-4", "Trip plan left with someone at home"),
	}},
	{"Documents", []domain.ChecklistItem{
		item("documents-1", "Driver licence"),
		item("documents-2", "Vehicle registration and insurance"),
		item("documents-3", "Park and permit bookings"),
		item("documents-4", "Offline maps downloaded"),
	}},
}

// templateChecklist returns a fresh copy of the master checklist with every
// item unchecked.
func templateChecklist() domain.Checklist {
	out := make(domain.Checklist, len(checklistTemplate))
	for _, c := range checklistTemplate {
		out[c.name] = append([]domain.ChecklistItem(nil), c.items...)
	}
	return out
}
