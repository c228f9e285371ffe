// Package seed holds the launch catalog: menu, events, community and
// gallery content, discount codes, and checkout options. The content
// team curates this by hand until the CMS integration lands.
package seed

import (
	"time"

	"github.com/kedaimae/kedai-backend/internal/domain"
)

// MenuItems the launch menu
func MenuItems() []domain.MenuItem {
	return []domain.MenuItem{
		{
			ID:          "1",
			Name:        "Nasi Goreng Special",
			Description: "Traditional Indonesian fried rice with shrimp, chicken, and vegetables, served with fried egg and crackers",
			Price:       45000,
			Image:       "https://images.unsplash.com/photo-1596040033229-a9821ebd058d?auto=format&fit=crop&w=400&q=80",
			Category:    "main-courses",
			Rating:      4.8,
			PrepTime:    "15 min",
			Allergens:   []string{"shellfish", "eggs", "soy"},
			IsSpicy:     true, IsGlutenFree: true,
			Available: true,
		},
		{
			ID:          "2",
			Name:        "Rendang Padang",
			Description: "Slow-cooked beef in rich coconut curry with authentic Padang spices, served with steamed rice",
			Price:       65000,
			Image:       "https://images.unsplash.com/photo-1574484284002-952d92456975?auto=format&fit=crop&w=400&q=80",
			Category:    "main-courses",
			Rating:      4.9,
			PrepTime:    "45 min",
			Allergens:   []string{"coconut"},
			IsSpicy:     true, IsGlutenFree: true,
			Available: true,
		},
		{
			ID:          "3",
			Name:        "Gado-Gado Jakarta",
			Description: "Fresh vegetable salad with tofu, tempeh, and boiled eggs, topped with peanut sauce",
			Price:       35000,
			Image:       "https://images.unsplash.com/photo-1547592180-85f173990554?auto=format&fit=crop&w=400&q=80",
			Category:    "appetizers",
			Rating:      4.7,
			PrepTime:    "10 min",
			Allergens:   []string{"peanuts", "eggs", "soy"},
			IsVegetarian: true, IsGlutenFree: true,
			Available: true,
		},
		{
			ID:          "4",
			Name:        "Sate Ayam Madura",
			Description: "Grilled chicken skewers marinated in sweet soy sauce, served with peanut sauce and rice cakes",
			Price:       35000,
			Image:       "https://images.unsplash.com/photo-1544025162-d76694265947?auto=format&fit=crop&w=400&q=80",
			Category:    "appetizers",
			Rating:      4.7,
			PrepTime:    "20 min",
			Allergens:   []string{"peanuts", "soy"},
			IsGlutenFree: true,
			Available:    true,
		},
		{
			ID:          "5",
			Name:        "Es Cendol",
			Description: "Traditional iced dessert with green rice flour jelly, coconut milk, and palm sugar syrup",
			Price:       15000,
			Image:       "https://images.unsplash.com/photo-1556679343-c7306c1976bc?auto=format&fit=crop&w=400&q=80",
			Category:    "desserts",
			Rating:      4.6,
			PrepTime:    "5 min",
			Allergens:   []string{"coconut"},
			IsVegetarian: true, IsVegan: true, IsGlutenFree: true,
			Available: true,
		},
		{
			ID:          "6",
			Name:        "Soto Ayam Lamongan",
			Description: "Clear chicken soup with turmeric, glass noodles, and fresh herbs, served with rice",
			Price:       40000,
			Image:       "https://images.unsplash.com/photo-1414235077428-338989a2e8c0?auto=format&fit=crop&w=400&q=80",
			Category:    "main-courses",
			Rating:      4.8,
			PrepTime:    "25 min",
			Allergens:   []string{"eggs"},
			Available:   true,
		},
	}
}

// DiscountCodes cart-level codes that apply with no preconditions
func DiscountCodes() []domain.Discount {
	return []domain.Discount{
		{Code: "WELCOME10", Kind: domain.DiscountKindPercentage, Value: 10},
		{Code: "SAVE20", Kind: domain.DiscountKindFixed, Value: 20000},
		{Code: "MAE2024", Kind: domain.DiscountKindPercentage, Value: 15},
	}
}

// PromoCodes checkout promotions, each with a minimum order
func PromoCodes() []domain.PromoCode {
	return []domain.PromoCode{
		{Code: "WELCOME20", Kind: domain.DiscountKindPercentage, Value: 20, MinOrder: 50000, Active: true},
		{Code: "NEWUSER", Kind: domain.DiscountKindFixed, Value: 25000, MinOrder: 75000, Active: true},
		{Code: "WEEKEND15", Kind: domain.DiscountKindPercentage, Value: 15, MinOrder: 40000, Active: true},
	}
}

// DeliveryOptions fulfillment choices offered at checkout
func DeliveryOptions() []domain.DeliveryOption {
	return []domain.DeliveryOption{
		{
			ID:            "pickup",
			Name:          "Pickup",
			Description:   "Pick up your order at our restaurant",
			Fee:           0,
			EstimatedTime: "15-20 min",
		},
		{
			ID:              "delivery",
			Name:            "Delivery",
			Description:     "We'll deliver to your location",
			Fee:             15000,
			EstimatedTime:   "30-45 min",
			RequiresAddress: true,
		},
	}
}

// PaymentMethods payment choices offered at checkout
func PaymentMethods() []domain.PaymentMethod {
	return []domain.PaymentMethod{
		{ID: "cash", Name: "Cash", Description: "Pay with cash on pickup/delivery"},
		{ID: "card", Name: "Credit/Debit Card", Description: "Pay securely with your card"},
		{ID: "ewallet", Name: "E-Wallet", Description: "GoPay, OVO, DANA, ShopeePay"},
	}
}

// Events the launch event calendar
func Events() []domain.Event {
	return []domain.Event{
		{
			ID:              "1",
			Title:           "Traditional Indonesian Cooking Masterclass",
			Description:     "Learn to cook authentic Indonesian dishes with our master chef",
			LongDescription: "Immerse yourself in the rich culinary traditions of Indonesia with this comprehensive masterclass. You'll learn to prepare classic dishes like Rendang, Nasi Gudeg, and Gado-Gado from scratch.",
			Category:        domain.EventCategoryMasterclass,
			Instructor: domain.Instructor{
				Name:       "Chef Sari Kusuma",
				Title:      "Master Chef & Culinary Heritage Expert",
				Image:      "https://images.unsplash.com/photo-1583394293214-28ded15ee548?auto=format&fit=crop&w=400&q=80",
				Rating:     4.9,
				Experience: "15+ years",
			},
			Date: "2024-02-15", StartTime: "09:00", EndTime: "15:00", Duration: "6 hours",
			Location:      "Kedai Mae Kitchen Studio",
			Price:         450000,
			OriginalPrice: 550000,
			MaxParticipants: 12, CurrentParticipants: 8,
			Difficulty: domain.DifficultyIntermediate,
			Image:      "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?auto=format&fit=crop&w=800&q=80",
			Includes: []string{
				"All ingredients and cooking equipment",
				"Recipe booklet to take home",
				"Lunch featuring dishes you've prepared",
				"Certificate of completion",
			},
			Requirements: []string{"Basic knife skills recommended", "Comfortable closed-toe shoes"},
			Tags:         []string{"traditional", "hands-on", "cultural", "intermediate"},
			Rating:       4.8, Reviews: 127,
			IsPopular: true, IsFeatured: true,
		},
		{
			ID:              "2",
			Title:           "Street Food Workshop: Jakarta Favorites",
			Description:     "Master the art of Indonesian street food in this hands-on workshop",
			LongDescription: "Discover the vibrant world of Jakarta street food! Learn to make popular favorites like Kerak Telor, Martabak, and Soto Betawi.",
			Category:        domain.EventCategoryWorkshop,
			Instructor: domain.Instructor{
				Name:       "Chef Budi Hartono",
				Title:      "Street Food Specialist",
				Image:      "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?auto=format&fit=crop&w=400&q=80",
				Rating:     4.7,
				Experience: "12+ years",
			},
			Date: "2024-02-18", StartTime: "14:00", EndTime: "18:00", Duration: "4 hours",
			Location: "Kedai Mae Kitchen Studio",
			Price:    275000,
			MaxParticipants: 16, CurrentParticipants: 12,
			Difficulty:   domain.DifficultyBeginner,
			Image:        "https://images.unsplash.com/photo-1555939594-58d7cb561ad1?auto=format&fit=crop&w=800&q=80",
			Includes:     []string{"All ingredients", "Street food recipe cards", "Tasting portions"},
			Requirements: []string{"No prior cooking experience needed"},
			Tags:         []string{"street-food", "beginner", "hands-on"},
			Rating:       4.6, Reviews: 89,
			IsPopular: true,
		},
		{
			ID:              "3",
			Title:           "Indonesian Spice Blending & Tasting",
			Description:     "Explore the complex world of Indonesian spices and create your own blends",
			LongDescription: "A guided journey through the Indonesian spice archipelago: learn to identify, toast, and blend the spices behind the cuisine's signature flavors.",
			Category:        domain.EventCategoryTasting,
			Instructor: domain.Instructor{
				Name:       "Chef Dewi Sartika",
				Title:      "Spice Expert & Food Historian",
				Image:      "https://images.unsplash.com/photo-1494790108755-2616b612b786?auto=format&fit=crop&w=400&q=80",
				Rating:     4.9,
				Experience: "20+ years",
			},
			Date: "2024-02-20", StartTime: "10:00", EndTime: "13:00", Duration: "3 hours",
			Location: "Kedai Mae Spice Garden",
			Price:    195000,
			MaxParticipants: 20, CurrentParticipants: 15,
			Difficulty:   domain.DifficultyBeginner,
			Image:        "https://images.unsplash.com/photo-1596040033229-a9821ebd058d?auto=format&fit=crop&w=800&q=80",
			Includes:     []string{"Spice blending kit", "Take-home spice blends", "Tasting session"},
			Requirements: []string{"No food allergies to common Indonesian spices"},
			Tags:         []string{"spices", "tasting", "beginner"},
			Rating:       4.9, Reviews: 64,
		},
		{
			ID:              "4",
			Title:           "Indonesian Dessert Making Workshop",
			Description:     "Create traditional Indonesian sweets and desserts",
			LongDescription: "Sweet endings, Indonesian style: klepon, es cendol, and layered kue lapis, made from scratch with traditional techniques.",
			Category:        domain.EventCategoryWorkshop,
			Instructor: domain.Instructor{
				Name:       "Chef Maya Indira",
				Title:      "Pastry Chef & Dessert Specialist",
				Image:      "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?auto=format&fit=crop&w=400&q=80",
				Rating:     4.8,
				Experience: "10+ years",
			},
			Date: "2024-02-22", StartTime: "13:00", EndTime: "17:00", Duration: "4 hours",
			Location: "Kedai Mae Kitchen Studio",
			Price:    320000,
			MaxParticipants: 14, CurrentParticipants: 6,
			Difficulty:   domain.DifficultyIntermediate,
			Image:        "https://images.unsplash.com/photo-1563805042-7684c019e1cb?auto=format&fit=crop&w=800&q=80",
			Includes:     []string{"All ingredients", "Dessert box to take home", "Recipe booklet"},
			Requirements: []string{"Apron will be provided"},
			Tags:         []string{"desserts", "sweets", "intermediate"},
			Rating:       4.7, Reviews: 52,
		},
	}
}

// ForumPosts launch forum content
func ForumPosts() []domain.ForumPost {
	return []domain.ForumPost{
		{
			ID:      "1",
			Title:   "Best Rendang Recipe - Family Secret Revealed!",
			Content: "After years of perfecting this recipe, I'm finally ready to share my grandmother's secret rendang recipe. The key is in the spice paste and slow cooking process...",
			Author: domain.Author{
				Name:   "Chef Sari",
				Avatar: "https://images.unsplash.com/photo-1494790108755-2616b612b786?auto=format&fit=crop&w=100&q=80",
			},
			Category: "recipes",
			Likes:    156, Dislikes: 3, Replies: 42,
			Tags:      []string{"rendang", "traditional", "beef", "spicy"},
			Image:     "https://images.unsplash.com/photo-1559847844-5315695dadae?auto=format&fit=crop&w=600&q=80",
			CreatedAt: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:      "2",
			Title:   "Kedai Mae Experience - 5 Stars!",
			Content: "Just visited Kedai Mae last weekend and I must say, the experience was absolutely amazing! The nasi goreng was perfectly seasoned and the service was top-notch.",
			Author: domain.Author{
				Name:   "Foodie Ahmad",
				Avatar: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?auto=format&fit=crop&w=100&q=80",
			},
			Category: "reviews",
			Likes:    89, Dislikes: 1, Replies: 23,
			Tags:      []string{"review", "nasi-goreng", "service"},
			CreatedAt: time.Date(2024, 1, 14, 15, 45, 0, 0, time.UTC),
		},
		{
			ID:      "3",
			Title:   "Tips for Perfect Gado-Gado Sauce",
			Content: "The secret to amazing gado-gado is all in the peanut sauce. Here are my top 5 tips for making the perfect sauce that will elevate your gado-gado game...",
			Author: domain.Author{
				Name:   "Ibu Ratna",
				Avatar: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?auto=format&fit=crop&w=100&q=80",
			},
			Category: "tips",
			Likes:    67, Replies: 18,
			Tags:      []string{"gado-gado", "sauce", "tips", "peanut"},
			CreatedAt: time.Date(2024, 1, 13, 9, 20, 0, 0, time.UTC),
		},
	}
}

// Polls launch community polls
func Polls() []domain.Poll {
	return []domain.Poll{
		{
			ID:       "1",
			Question: "What's your favorite Indonesian dish at Kedai Mae?",
			Options: []domain.PollOption{
				{ID: "1", Text: "Nasi Goreng Special", Votes: 45},
				{ID: "2", Text: "Rendang Padang", Votes: 38},
				{ID: "3", Text: "Gado-Gado Jakarta", Votes: 22},
				{ID: "4", Text: "Sate Ayam Madura", Votes: 31},
			},
			TotalVotes: 136,
			Author:     domain.Author{Name: "Kedai Mae Team"},
			CreatedAt:  time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC),
		},
		{
			ID:       "2",
			Question: "Which cooking workshop would you be most interested in?",
			Options: []domain.PollOption{
				{ID: "1", Text: "Traditional Rendang Masterclass", Votes: 28},
				{ID: "2", Text: "Indonesian Street Food", Votes: 35},
				{ID: "3", Text: "Vegetarian Indonesian Cuisine", Votes: 19},
				{ID: "4", Text: "Dessert & Beverages", Votes: 24},
			},
			TotalVotes: 106,
			Author:     domain.Author{Name: "Chef Budi"},
			CreatedAt:  time.Date(2024, 1, 14, 12, 0, 0, 0, time.UTC),
		},
	}
}

// ShowcasePosts launch home-cooking showcase
func ShowcasePosts() []domain.ShowcasePost {
	return []domain.ShowcasePost{
		{
			ID:          "1",
			Title:       "My Homemade Rendang Attempt",
			Description: "Tried making rendang at home using the recipe from the forum. Not perfect but getting there!",
			Image:       "https://images.unsplash.com/photo-1559847844-5315695dadae?auto=format&fit=crop&w=400&q=80",
			Author: domain.Author{
				Name:   "Cooking Newbie",
				Avatar: "https://images.unsplash.com/photo-1534528741775-53994a69daeb?auto=format&fit=crop&w=100&q=80",
			},
			Likes: 34, Comments: 12,
			Tags:      []string{"homemade", "rendang", "attempt"},
			CreatedAt: time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC),
		},
		{
			ID:          "2",
			Title:       "Beautiful Gado-Gado Presentation",
			Description: "Spent extra time on presentation today. Sometimes food is art!",
			Image:       "https://images.unsplash.com/photo-1547592180-85f173990554?auto=format&fit=crop&w=400&q=80",
			Author: domain.Author{
				Name:   "Artistic Cook",
				Avatar: "https://images.unsplash.com/photo-1544005313-94ddf0286df2?auto=format&fit=crop&w=100&q=80",
			},
			Likes: 67, Comments: 8,
			Tags:      []string{"gado-gado", "presentation", "art"},
			CreatedAt: time.Date(2024, 1, 14, 16, 45, 0, 0, time.UTC),
		},
	}
}

// GalleryImages launch gallery content
func GalleryImages() []domain.GalleryImage {
	return []domain.GalleryImage{
		{
			ID:          "1",
			Title:       "Signature Nasi Rendang",
			Description: "Our most popular dish featuring tender beef rendang with aromatic jasmine rice",
			URL:         "https://images.unsplash.com/photo-1574484284002-952d92456975?auto=format&fit=crop&w=600&q=80",
			Category:    "food",
			Likes:       245,
			Tags:        []string{"rendang", "signature", "beef"},
			CreatedAt:   time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:          "2",
			Title:       "Fresh Spring Rolls",
			Description: "Crispy spring rolls filled with fresh vegetables and served with sweet chili sauce",
			URL:         "https://images.unsplash.com/photo-1544025162-d76694265947?auto=format&fit=crop&w=600&q=80",
			Category:    "food",
			Likes:       189,
			Tags:        []string{"fresh", "vegetarian", "crispy", "healthy"},
			CreatedAt:   time.Date(2024, 1, 11, 11, 30, 0, 0, time.UTC),
		},
		{
			ID:          "3",
			Title:       "Kitchen in Action",
			Description: "Behind the scenes: our chefs preparing the daily specials",
			URL:         "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?auto=format&fit=crop&w=600&q=80",
			Category:    "behind-the-scenes",
			Likes:       98,
			Tags:        []string{"kitchen", "chefs", "behind-scenes"},
			CreatedAt:   time.Date(2024, 1, 12, 14, 0, 0, 0, time.UTC),
		},
		{
			ID:          "4",
			Title:       "Dining Room at Dusk",
			Description: "The warm evening atmosphere of our main dining room",
			URL:         "https://images.unsplash.com/photo-1414235077428-338989a2e8c0?auto=format&fit=crop&w=600&q=80",
			Category:    "restaurant",
			Likes:       156,
			Tags:        []string{"interior", "ambience", "evening"},
			CreatedAt:   time.Date(2024, 1, 13, 18, 0, 0, 0, time.UTC),
		},
		{
			ID:          "5",
			Title:       "Spice Blending Workshop",
			Description: "Guests exploring the Indonesian spice archipelago at our tasting event",
			URL:         "https://images.unsplash.com/photo-1596040033229-a9821ebd058d?auto=format&fit=crop&w=600&q=80",
			Category:    "events",
			Likes:       112,
			Tags:        []string{"workshop", "spices", "guests"},
			CreatedAt:   time.Date(2024, 1, 14, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:          "6",
			Title:       "Es Cendol Hour",
			Description: "Palm sugar, coconut milk, and pandan jelly: the classic afternoon cooler",
			URL:         "https://images.unsplash.com/photo-1556679343-c7306c1976bc?auto=format&fit=crop&w=600&q=80",
			Category:    "food",
			Likes:       134,
			Tags:        []string{"dessert", "es-cendol", "traditional"},
			CreatedAt:   time.Date(2024, 1, 15, 15, 0, 0, 0, time.UTC),
		},
	}
}

// SeedUser credentials plus profile for a pre-provisioned account
type SeedUser struct {
	User     domain.User
	Password string
}

// Users pre-provisioned accounts: one admin, one demo member
func Users() []SeedUser {
	return []SeedUser{
		{
			Password: "admin12345",
			User: domain.User{
				ID:    "admin-1",
				Name:  "Mae Wijaya",
				Email: "admin@kedaimae.com",
				Role:  domain.RoleAdmin,
				Level: domain.LevelGold,
				Notifications: domain.NotificationSettings{Email: true},
				CreatedAt:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			Password: "password123",
			User: domain.User{
				ID:     "user-1",
				Name:   "John Doe",
				Email:  "john@example.com",
				Avatar: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?auto=format&fit=crop&w=150&q=80",
				Role:   domain.RoleMember,
				Level:  domain.LevelGold,
				LoyaltyPoints: 1250,
				Preferences: domain.Preferences{
					Allergies:  []string{"peanuts"},
					Dietary:    []string{},
					SpiceLevel: "medium",
				},
				Notifications: domain.NotificationSettings{Email: true, Push: true},
				CreatedAt:     time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			},
		},
	}
}
