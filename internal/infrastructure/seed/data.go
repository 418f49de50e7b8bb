package seed

import "github.com/shopspring/decimal"

type categorySeed struct {
	name        string
	description string
}

var categories = []categorySeed{
	{"Engine Parts", "High-performance engine components for racing and daily use"},
	{"Brake Systems", "Brake pads, rotors, and calipers for safety and performance"},
	{"Suspension", "Shocks, springs, and suspension components"},
	{"Exhaust Systems", "Performance exhausts and mufflers"},
	{"Wheels & Tires", "Racing and street wheels and tires"},
	{"Body Parts", "Fairings, windscreens, and body components"},
	{"Electronics", "ECU, sensors, and electronic accessories"},
	{"Maintenance", "Oil, filters, and maintenance supplies"},
}

type productSeed struct {
	name        string
	description string
	price       int64
	category    string
	brand       string
	model       string
	yearRange   string
	stock       int
	racing      bool
}

var products = []productSeed{
	{"Racing Brake Pads", "High-performance brake pads for track use", 4500, "Brake Systems", "Brembo", "Racing", "2020-2024", 50, true},
	{"Street Brake Pads", "Daily use brake pads with excellent stopping power", 2300, "Brake Systems", "EBC", "Street", "2018-2024", 100, false},
	{"Racing Exhaust", "Full titanium racing exhaust system", 45000, "Exhaust Systems", "Akrapovic", "Racing", "2020-2024", 15, true},
	{"Street Exhaust", "Stainless steel street legal exhaust", 15000, "Exhaust Systems", "Yoshimura", "Street", "2018-2024", 30, false},
	{"Racing Suspension", "Adjustable racing suspension kit", 65000, "Suspension", "Öhlins", "Racing", "2020-2024", 10, true},
	{"Street Suspension", "Comfortable street suspension upgrade", 20000, "Suspension", "Koni", "Street", "2018-2024", 25, false},
	{"Racing Wheels", "Lightweight forged racing wheels", 80000, "Wheels & Tires", "Marchesini", "Racing", "2020-2024", 8, true},
	{"Street Wheels", "Durable alloy street wheels", 30000, "Wheels & Tires", "OZ Racing", "Street", "2018-2024", 20, false},
	{"Racing Chain", "High-performance racing chain", 10000, "Engine Parts", "DID", "Racing", "2020-2024", 25, true},
	{"Street Chain", "Durable street chain", 4500, "Engine Parts", "RK", "Street", "2018-2024", 40, false},
}

func (p productSeed) priceDecimal() decimal.Decimal {
	return decimal.NewFromInt(p.price)
}

type serviceSeed struct {
	name        string
	description string
	price       int64
	hours       int
	racing      bool
}

var services = []serviceSeed{
	{"Engine Tuning", "Professional engine tuning and mapping", 10000, 4, true},
	{"Brake Service", "Complete brake system inspection and service", 4000, 2, false},
	{"Suspension Setup", "Racing suspension tuning and setup", 7500, 3, true},
	{"Oil Change", "Full synthetic oil change service", 2500, 1, false},
	{"Chain Service", "Chain cleaning, lubrication, and adjustment", 2000, 1, false},
	{"Racing Preparation", "Complete racing bike preparation", 15000, 6, true},
	{"Safety Inspection", "Comprehensive safety inspection", 3000, 2, false},
	{"Performance Upgrade", "Performance parts installation and tuning", 10000, 4, true},
}

type teamSeed struct {
	name        string
	role        string
	description string
	handle      string
}

var teamMembers = []teamSeed{
	{"Alex Rodriguez", "Founder & Lead Technician", "15+ years of experience in motorcycle engineering and racing. Former professional racer with multiple championship titles.", "alex-rodriguez"},
	{"Sarah Chen", "Head of Engineering", "Mechanical engineering graduate specializing in motorcycle performance optimization and custom modifications.", "sarah-chen"},
	{"Mike Thompson", "Senior Technician", "Expert in both racing and daily motorcycle maintenance with a focus on customer satisfaction and quality service.", "mike-thompson"},
}

type awardSeed struct {
	title       string
	subtitle    string
	year        int
	category    string
	description string
}

var awards = []awardSeed{
	{"Racing Championship 2023", "1st Place - National Motorcycle Racing", 2023, "Racing", "Won the national motorcycle racing championship with outstanding performance and technical excellence."},
	{"Best Service Award 2023", "Excellence in Customer Service", 2023, "Service", "Recognized for exceptional customer service and support in the motorcycle industry."},
	{"Innovation Award 2022", "Technical Innovation in Racing", 2022, "Innovation", "Awarded for groundbreaking technical innovations in motorcycle racing technology."},
	{"Team Championship 2023", "Best Racing Team Performance", 2023, "Team", "Outstanding team performance and collaboration in competitive racing events."},
	{"Quality Certification 2023", "ISO 9001 Quality Management", 2023, "Quality", "Achieved ISO 9001 certification for quality management systems and processes."},
	{"Safety Award 2023", "Excellence in Safety Standards", 2023, "Safety", "Recognized for maintaining the highest safety standards in motorcycle services."},
	{"Customer Choice 2023", "Most Trusted Motorcycle Service", 2023, "Customer", "Voted by customers as the most trusted motorcycle service provider."},
	{"Performance Award 2022", "Outstanding Racing Performance", 2022, "Performance", "Awarded for exceptional performance in competitive racing events."},
	{"Technical Excellence 2023", "Advanced Technical Solutions", 2023, "Innovation", "Recognized for developing advanced technical solutions in motorcycle engineering."},
	{"Community Service Award 2023", "Outstanding Community Contribution", 2023, "Other", "Awarded for significant contributions to the motorcycle community and local events."},
}

func decimalFromInt(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func underscore(handle string) string {
	out := []byte(handle)
	for i, c := range out {
		if c == '-' {
			out[i] = '_'
		}
	}
	return string(out)
}
