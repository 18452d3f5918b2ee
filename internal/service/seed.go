package service

import (
	"time"

	"github.com/pkordes/wayfarer/internal/domain"
)

// Demo data written to an empty installation when seeding is enabled.

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func seedTripState() tripState {
	darwin := domain.Location{Latitude: -12.4634, Longitude: 130.8456, Name: "Darwin"}
	katherine := domain.Location{Latitude: -14.4652, Longitude: 132.2664, Name: "Katherine"}

	st := tripState{
		Trips: []domain.Trip{
			{
				ID:            "1",
				Title:         "NT Outback Journey 2025",
				Description:   "Documenting the road trip across the Northern Territory, visiting remote communities and capturing the raw beauty of the Australian outback.",
				StartDate:     day("2025-06-26"),
				EndDate:       day("2025-07-15"),
				CoverImageURI: "https://images.unsplash.com/photo-1529108190281-9a4f620bc2d8?ixlib=rb-1.2.1&auto=format&fit=crop&w=1350&q=80",
				Locations: []domain.Location{
					darwin,
					katherine,
					{Latitude: -23.6980, Longitude: 133.8807, Name: "Alice Springs"},
				},
				IsActive: true,
			},
			{
				ID:            "2",
				Title:         "Tasmania Wilderness Trek",
				Description:   "Exploring the pristine wilderness of Tasmania, hiking through ancient forests and along rugged coastlines.",
				StartDate:     day("2025-03-10"),
				EndDate:       day("2025-03-25"),
				CoverImageURI: "https://images.unsplash.com/photo-1506146332389-18140dc7b2fb?ixlib=rb-1.2.1&auto=format&fit=crop&w=1350&q=80",
				Locations: []domain.Location{
					{Latitude: -42.8821, Longitude: 147.3272, Name: "Hobart"},
					{Latitude: -41.4419, Longitude: 146.4132, Name: "Cradle Mountain"},
				},
			},
		},
		ActiveTripID: "1",
		JournalEntries: []domain.JournalEntry{
			{
				ID:       "1",
				TripID:   "1",
				Title:    "Day 1. Leaving Darwin.",
				Content:  "Finally hitting the road! Darwin's looking beautiful this morning. Vehicle's loaded up with gear and ready for three weeks across the Territory. The journey begins - first destination: Katherine for fuel and supplies. Can't wait to see what adventures await in the outback.",
				Date:     day("2025-06-26"),
				Location: darwin,
				Category: "Today's Drive",
				ImageURI: "https://images.unsplash.com/photo-1529108190281-9a4f620bc2d8?ixlib=rb-1.2.1&auto=format&fit=crop&w=1350&q=80",
				Weather:  "Sunny, 32°C",
				Mood:     "Excited",
			},
			{
				ID:       "2",
				TripID:   "1",
				Title:    "Katherine Gorge Sunset",
				Content:  "Spent the afternoon kayaking through Katherine Gorge. The ancient rock formations are breathtaking, especially as the sun sets and bathes everything in golden light. Spotted several freshwater crocodiles sunning themselves on the rocks.",
				Date:     day("2025-06-27"),
				Location: katherine,
				Category: "Adventure",
				ImageURI: "https://images.unsplash.com/photo-1600255821058-c4f89958d700?ixlib=rb-1.2.1&auto=format&fit=crop&w=1350&q=80",
				Weather:  "Clear, 30°C",
				Mood:     "Peaceful",
			},
			{
				ID:       "3",
				TripID:   "1",
				Title:    "Roadside Encounter",
				Content:  "Had to stop for a family of kangaroos crossing the Stuart Highway this morning. Counted at least 15 of them hopping across. The little joeys were adorable! Reminded me why I love road trips through the outback.",
				Date:     day("2025-06-28"),
				Location: domain.Location{Latitude: -15.6252, Longitude: 131.8347, Name: "Stuart Highway"},
				Category: "Wildlife",
				ImageURI: "https://images.unsplash.com/photo-1526095179574-86e545346ae6?ixlib=rb-1.2.1&auto=format&fit=crop&w=1350&q=80",
				Weather:  "Partly Cloudy, 29°C",
				Mood:     "Amused",
			},
		},
		Photos: []domain.Photo{},
	}
	for i := range st.Trips {
		st.refreshStats(i)
	}
	return st
}

func seedGearState() gearState {
	return gearState{
		GearCategories: []domain.GearCategory{
			{ID: "1", Name: "Camping", Icon: "tent"},
			{ID: "2", Name: "Clothing", Icon: "shirt"},
			{ID: "3", Name: "Electronics", Icon: "smartphone"},
			{ID: "4", Name: "Cooking", Icon: "utensils"},
			{ID: "5", Name: "First Aid", Icon: "first-aid"},
		},
		GearItems: []domain.GearItem{
			{ID: "1", Name: "Tent - 3 Person", Category: "1", Weight: 2.5, IsPacked: true, Notes: "Check for tears before packing",
				ImageURI: "https://images.unsplash.com/photo-1504280390367-361c6d9f38f4?ixlib=rb-1.2.1&auto=format&fit=crop&w=1350&q=80"},
			{ID: "2", Name: "Sleeping Bag", Category: "1", Weight: 1.2, IsPacked: true, Notes: "Rated for -5°C",
				ImageURI: "https://images.unsplash.com/photo-1520645521318-f03a712f0e67?ixlib=rb-1.2.1&auto=format&fit=crop&w=1350&q=80"},
			{ID: "3", Name: "Hiking Boots", Category: "2", Weight: 0.9, IsPacked: true, Notes: "Waterproof",
				ImageURI: "https://images.unsplash.com/photo-1520639888713-7851133b1ed0?ixlib=rb-1.2.1&auto=format&fit=crop&w=1350&q=80"},
			{ID: "4", Name: "Camera", Category: "3", Weight: 0.7, IsPacked: true, Notes: "Bring extra batteries",
				ImageURI: "https://images.unsplash.com/photo-1516035069371-29a1b244cc32?ixlib=rb-1.2.1&auto=format&fit=crop&w=1350&q=80"},
			{ID: "5", Name: "Portable Stove", Category: "4", Weight: 0.5, IsPacked: false, Notes: "Need to buy fuel",
				ImageURI: "https://images.unsplash.com/photo-1523987355523-c7b5b0dd90a7?ixlib=rb-1.2.1&auto=format&fit=crop&w=1350&q=80"},
		},
	}
}

func seedVehicle() domain.Vehicle {
	return domain.Vehicle{
		Name:     "Toyota Land Cruiser",
		PhotoURI: "https://images.unsplash.com/photo-1617531322438-288543a3036d?w=600",
		Modifications: []domain.VehicleMod{
			{ID: "mod-1", Name: "Rooftop Tent", Description: "23ZERO Walkabout 62 - Perfect for outback camping"},
			{ID: "mod-2", Name: "Suspension Lift", Description: "2-inch lift with Bilstein shocks for better ground clearance"},
			{ID: "mod-3", Name: "All-Terrain Tires", Description: "BFGoodrich KO2 - Excellent grip on sand and rocks"},
		},
	}
}

func seedAssets() []domain.DigitalAsset {
	return []domain.DigitalAsset{
		{ID: "asset-1", Name: "GoPro HERO12 Black", Type: domain.AssetTypeActionCamera, SerialNumber: "C3421324501234",
			Notes: "Main action cam for documenting the journey.", ImageURI: "https://images.unsplash.com/photo-1695431495995-5783a3f5561a?w=500"},
		{ID: "asset-2", Name: "Starlink Gen 2", Type: domain.AssetTypeSatellite, SerialNumber: "KIT0123456789",
			Notes: "For remote internet connectivity.", ImageURI: "https://images.unsplash.com/photo-1633511920-8875ab965f13?w=500"},
		{ID: "asset-3", Name: "DJI Mini 3 Pro", Type: domain.AssetTypeDrone, SerialNumber: "DJI001234567",
			Notes: "Aerial photography and videography.", ImageURI: "https://images.unsplash.com/photo-1473968512647-3e447244af8f?w=500"},
	}
}

func seedGalleryPhotos() []domain.GalleryPhoto {
	return []domain.GalleryPhoto{
		{ID: "1", Caption: "Darwin Sunset", Description: "The sky was on fire tonight over the water.", ImageURI: "https://images.unsplash.com/photo-1565530919137-3401586552e5?w=500"},
		{ID: "2", Caption: "Litchfield NP", Description: "Exploring the magnetic termite mounds.", ImageURI: "https://images.unsplash.com/photo-1547036234-a8c626514144?w=500"},
		{ID: "3", Caption: "Kakadu Crocs", Description: "Saw a few big ones on the Yellow Water cruise.", ImageURI: "https://images.unsplash.com/photo-1594586365393-3dedb66060c4?w=500"},
		{ID: "4", Caption: "Katherine Gorge", Description: "Paddling through the ancient rock formations.", ImageURI: "https://images.unsplash.com/photo-1621495533139-3619929d833a?w=500"},
		{ID: "5", Caption: "Mataranka", Description: "The thermal pools were incredible.", ImageURI: "https://images.unsplash.com/photo-1617531322438-288543a3036d?w=500"},
		{ID: "6", Caption: "Daly Waters Pub", Description: "A classic outback pub experience.", ImageURI: "https://images.unsplash.com/photo-1580489944761-15a19d654956?w=500"},
		{ID: "7", Caption: "Devil's Marbles", Description: "These giant boulders are otherworldly.", ImageURI: "https://images.unsplash.com/photo-1528575628285-3531db61e683?w=500"},
		{ID: "8", Caption: "Alice Springs", Description: "The heart of the Red Centre.", ImageURI: "https://images.unsplash.com/photo-1594917409015-209a1a4c4e36?w=500"},
		{ID: "9", Caption: "West Macs", Description: "Hiking through Ormiston Gorge.", ImageURI: "https://images.unsplash.com/photo-1547842683-04ab648cb42c?w=500"},
		{ID: "10", Caption: "Kings Canyon", Description: "The rim walk was breathtaking.", ImageURI: "https://images.unsplash.com/photo-1557676757-b4539b98628b?w=500"},
		{ID: "11", Caption: "Uluru Sunrise", Description: "A truly magical moment.", ImageURI: "https://images.unsplash.com/photo-1596491732643-9b8d7814a1a0?w=500"},
		{ID: "12", Caption: "Kata Tjuta", Description: "Valley of the Winds walk.", ImageURI: "https://images.unsplash.com/photo-1594154378713-d0216715f55c?w=500"},
	}
}
