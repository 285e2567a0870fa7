// Package seed holds the built-in demo dataset loaded by both store backends
// on startup. The catalog has no persistence; every process starts from this
// data.
package seed

import "github.com/nitj-exchange/hub/pkg/types"

// Data is the full dataset a backend loads on open.
type Data struct {
	Items       []types.Item
	Requests    []types.Request
	Users       []types.User
	Chats       []types.Chat
	CurrentUser types.User
}

// currentUser is the injected identity. It also appears in Users so that
// owner and requester references to it resolve like any other user.
var currentUser = types.User{
	ID:       4,
	Name:     "Rahul Kumar",
	Email:    "student@nitj.ac.in",
	Verified: true,
	Rating:   4.8,
	Avatar:   "https://api.dicebear.com/7.x/avataaars/svg?seed=Rahul",
}

// Builtin returns a fresh copy of the built-in dataset. Callers own the
// returned slices.
func Builtin() Data {
	return Data{
		Items: []types.Item{
			{
				ID:          1,
				Title:       "DSLR Camera",
				ListingType: types.ListingRent,
				Category:    types.CategoryElectronics,
				Price:       200,
				OwnerID:     1,
				Image:       "https://images.unsplash.com/photo-1502920917128-1aa500764cbd?w=800&h=600&fit=crop",
				Condition:   "Excellent, lightly used.",
				Verified:    true,
				Description: "Perfect for fests and project shoots. Includes bag and battery.",
			},
			{
				ID:          2,
				Title:       "HP Printer",
				ListingType: types.ListingSell,
				Category:    types.CategoryElectronics,
				Price:       3500,
				OwnerID:     2,
				Image:       "https://images.unsplash.com/photo-1612815154858-60aa4c59eaa6?w=800&h=600&fit=crop",
				Condition:   "Good condition, works perfectly.",
				Verified:    true,
				Description: "Portable HP printer with extra ink cartridges.",
			},
			{
				ID:          3,
				Title:       "Cricket Kit",
				ListingType: types.ListingRent,
				Category:    types.CategorySports,
				Price:       100,
				OwnerID:     3,
				Image:       "https://images.unsplash.com/photo-1531415074968-036ba1b575da?w=800&h=600&fit=crop",
				Condition:   "Used but well maintained.",
				Verified:    false,
				Description: "Complete kit for weekend matches — pads, gloves, bat.",
			},
			{
				ID:          4,
				Title:       "Data Structures Textbook",
				ListingType: types.ListingSell,
				Category:    types.CategoryBooks,
				Price:       450,
				OwnerID:     1,
				Image:       "https://images.unsplash.com/photo-1544716278-ca5e3f4abd8c?w=800&h=600&fit=crop",
				Condition:   "Like new, barely used.",
				Verified:    true,
				Description: "Standard textbook for CS students. No markings.",
			},
			{
				ID:          5,
				Title:       "Gaming Keyboard",
				ListingType: types.ListingRent,
				Category:    types.CategoryElectronics,
				Price:       150,
				OwnerID:     2,
				Image:       "https://images.unsplash.com/photo-1587829741301-dc798b83add3?w=800&h=600&fit=crop",
				Condition:   "Excellent condition.",
				Verified:    true,
				Description: "Mechanical RGB keyboard. Perfect for gaming or coding.",
			},
			{
				ID:          6,
				Title:       "Badminton Racket Set",
				ListingType: types.ListingRent,
				Category:    types.CategorySports,
				Price:       80,
				OwnerID:     3,
				Image:       "https://images.unsplash.com/photo-1626224583764-f87db24ac4ea?w=800&h=600&fit=crop",
				Condition:   "Good condition.",
				Verified:    false,
				Description: "2 rackets with shuttlecocks included.",
			},
			{
				ID:          7,
				Title:       "Study Lamp",
				ListingType: types.ListingSell,
				Category:    types.CategoryMisc,
				Price:       600,
				OwnerID:     4,
				Image:       "https://images.unsplash.com/photo-1507473885765-e6ed057f782c?w=800&h=600&fit=crop",
				Condition:   "Excellent condition.",
				Verified:    true,
				Description: "LED desk lamp with adjustable brightness. Perfect for late-night study sessions.",
			},
			{
				ID:          8,
				Title:       "Graphing Calculator",
				ListingType: types.ListingRent,
				Category:    types.CategoryElectronics,
				Price:       50,
				OwnerID:     4,
				Image:       "https://images.unsplash.com/photo-1611165973554-0d4e32d8e00d?w=800&h=600&fit=crop",
				Condition:   "Good working condition.",
				Verified:    true,
				Description: "TI-84 Plus graphing calculator. Great for exams and assignments.",
			},
			{
				ID:          9,
				Title:       "Python Programming Book",
				ListingType: types.ListingSell,
				Category:    types.CategoryBooks,
				Price:       350,
				OwnerID:     4,
				Image:       "https://images.unsplash.com/photo-1589998059171-988d887df646?w=800&h=600&fit=crop",
				Condition:   "Like new.",
				Verified:    true,
				Description: "Comprehensive Python guide with exercises. Minimal wear.",
			},
		},
		Requests: []types.Request{
			{
				ID:          1,
				Title:       "Looking for MacBook Pro",
				RequestType: types.RequestBuy,
				Category:    types.CategoryElectronics,
				MaxPrice:    50000,
				RequesterID: 2,
				Description: "Need a MacBook Pro for development work. Preferably 2020 or newer model.",
				CreatedAt:   "2 hours ago",
			},
			{
				ID:          2,
				Title:       "Need Calculus Textbook",
				RequestType: types.RequestRent,
				Category:    types.CategoryBooks,
				MaxPrice:    200,
				RequesterID: 3,
				Description: "Looking to rent Advanced Engineering Mathematics for this semester.",
				CreatedAt:   "1 day ago",
			},
			{
				ID:          3,
				Title:       "Football needed",
				RequestType: types.RequestRent,
				Category:    types.CategorySports,
				MaxPrice:    50,
				RequesterID: 1,
				Description: "Need a football for weekend matches. Good condition preferred.",
				CreatedAt:   "3 days ago",
			},
			{
				ID:          4,
				Title:       "Wireless Mouse",
				RequestType: types.RequestBuy,
				Category:    types.CategoryElectronics,
				MaxPrice:    800,
				RequesterID: currentUser.ID,
				Description: "Looking for a good wireless mouse for daily use.",
				CreatedAt:   "5 hours ago",
			},
		},
		Users: []types.User{
			{
				ID:       1,
				Name:     "Priya Sharma",
				Email:    "priya@nitj.ac.in",
				Verified: true,
				Rating:   4.9,
				Avatar:   "https://api.dicebear.com/7.x/avataaars/svg?seed=Priya",
			},
			{
				ID:       2,
				Name:     "Aakash Mehta",
				Email:    "aakash@nitj.ac.in",
				Verified: true,
				Rating:   4.7,
				Avatar:   "https://api.dicebear.com/7.x/avataaars/svg?seed=Aakash",
			},
			{
				ID:       3,
				Name:     "Rohan Verma",
				Email:    "rohan@nitj.ac.in",
				Verified: false,
				Rating:   4.2,
				Avatar:   "https://api.dicebear.com/7.x/avataaars/svg?seed=Rohan",
			},
			currentUser,
		},
		Chats: []types.Chat{
			{
				BookingID: 101,
				ItemID:    1,
				Messages: []types.Message{
					{From: types.SenderYou, Text: "Hi Priya, is the DSLR still available?", Timestamp: "10:30 AM"},
					{From: "Priya Sharma", Text: "Yes! You can rent it today from 3–6 PM.", Timestamp: "10:32 AM"},
					{From: types.SenderYou, Text: "Perfect, I'll pick it up from the library desk.", Timestamp: "10:35 AM"},
				},
			},
		},
		CurrentUser: currentUser,
	}
}
