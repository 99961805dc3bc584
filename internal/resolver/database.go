package resolver

import "github.com/logofetch/logofetch/internal/logo"

// Database is the curated company table: process-wide, read-only,
// initialized once. Iteration order is the declaration order below and
// is part of the contract — fuzzy-match ties resolve to the first entry
// encountered, so reordering entries changes observable behavior.
type Database struct {
	entries []logo.CompanyEntry
	index   map[string]int
}

// NewDatabase builds the curated database. Keys and aliases are stored
// pre-normalized (lowercase, no separator punctuation).
func NewDatabase() *Database {
	db := &Database{
		entries: curatedEntries,
		index:   make(map[string]int, len(curatedEntries)),
	}
	for i, e := range db.entries {
		db.index[e.Key] = i
	}
	return db
}

// All returns the entries in their stable iteration order. Callers must
// treat the slice as read-only.
func (d *Database) All() []logo.CompanyEntry {
	return d.entries
}

// Lookup returns the entry for an exact normalized key.
func (d *Database) Lookup(key string) (logo.CompanyEntry, bool) {
	i, ok := d.index[key]
	if !ok {
		return logo.CompanyEntry{}, false
	}
	return d.entries[i], true
}

// Len reports the number of curated entries.
func (d *Database) Len() int {
	return len(d.entries)
}

var curatedEntries = []logo.CompanyEntry{
	{Key: "google", Domain: "google.com", Aliases: []string{"alphabet", "googl"}, Category: "technology"},
	{Key: "apple", Domain: "apple.com", Aliases: []string{"aapl"}, Category: "technology"},
	{Key: "microsoft", Domain: "microsoft.com", Aliases: []string{"msft", "ms"}, Category: "technology"},
	{Key: "amazon", Domain: "amazon.com", Aliases: []string{"amzn", "aws"}, Category: "technology"},
	{Key: "meta", Domain: "meta.com", Aliases: []string{"facebook", "fb"}, Category: "social"},
	{Key: "netflix", Domain: "netflix.com", Aliases: []string{"nflx"}, Category: "media"},
	{Key: "github", Domain: "github.com", Aliases: []string{"gh", "github inc"}, Category: "technology"},
	{Key: "gitlab", Domain: "gitlab.com", Aliases: nil, Category: "technology"},
	{Key: "shopify", Domain: "shopify.com", Aliases: []string{"shop"}, Category: "retail"},
	{Key: "stripe", Domain: "stripe.com", Aliases: nil, Category: "finance"},
	{Key: "paypal", Domain: "paypal.com", Aliases: []string{"pypl"}, Category: "finance"},
	{Key: "square", Domain: "squareup.com", Aliases: []string{"block"}, Category: "finance"},
	{Key: "visa", Domain: "visa.com", Aliases: nil, Category: "finance"},
	{Key: "mastercard", Domain: "mastercard.com", Aliases: []string{"mc"}, Category: "finance"},
	{Key: "american express", Domain: "americanexpress.com", Aliases: []string{"amex"}, Category: "finance"},
	{Key: "goldman sachs", Domain: "goldmansachs.com", Aliases: []string{"goldman", "gs"}, Category: "finance"},
	{Key: "jpmorgan", Domain: "jpmorganchase.com", Aliases: []string{"jp morgan", "chase"}, Category: "finance"},
	{Key: "morgan stanley", Domain: "morganstanley.com", Aliases: nil, Category: "finance"},
	{Key: "bank of america", Domain: "bankofamerica.com", Aliases: []string{"bofa"}, Category: "finance"},
	{Key: "wells fargo", Domain: "wellsfargo.com", Aliases: nil, Category: "finance"},
	{Key: "coinbase", Domain: "coinbase.com", Aliases: nil, Category: "finance"},
	{Key: "robinhood", Domain: "robinhood.com", Aliases: nil, Category: "finance"},
	{Key: "twitter", Domain: "x.com", Aliases: []string{"x"}, Category: "social"},
	{Key: "linkedin", Domain: "linkedin.com", Aliases: nil, Category: "social"},
	{Key: "instagram", Domain: "instagram.com", Aliases: []string{"ig", "insta"}, Category: "social"},
	{Key: "tiktok", Domain: "tiktok.com", Aliases: []string{"bytedance"}, Category: "social"},
	{Key: "snapchat", Domain: "snapchat.com", Aliases: []string{"snap"}, Category: "social"},
	{Key: "pinterest", Domain: "pinterest.com", Aliases: nil, Category: "social"},
	{Key: "reddit", Domain: "reddit.com", Aliases: nil, Category: "social"},
	{Key: "discord", Domain: "discord.com", Aliases: nil, Category: "social"},
	{Key: "slack", Domain: "slack.com", Aliases: nil, Category: "technology"},
	{Key: "zoom", Domain: "zoom.us", Aliases: []string{"zoom video"}, Category: "technology"},
	{Key: "salesforce", Domain: "salesforce.com", Aliases: []string{"crm"}, Category: "technology"},
	{Key: "oracle", Domain: "oracle.com", Aliases: nil, Category: "technology"},
	{Key: "sap", Domain: "sap.com", Aliases: nil, Category: "technology"},
	{Key: "ibm", Domain: "ibm.com", Aliases: []string{"international business machines"}, Category: "technology"},
	{Key: "intel", Domain: "intel.com", Aliases: []string{"intc"}, Category: "technology"},
	{Key: "amd", Domain: "amd.com", Aliases: []string{"advanced micro devices"}, Category: "technology"},
	{Key: "nvidia", Domain: "nvidia.com", Aliases: []string{"nvda"}, Category: "technology"},
	{Key: "qualcomm", Domain: "qualcomm.com", Aliases: nil, Category: "technology"},
	{Key: "cisco", Domain: "cisco.com", Aliases: nil, Category: "technology"},
	{Key: "dell", Domain: "dell.com", Aliases: nil, Category: "technology"},
	{Key: "hp", Domain: "hp.com", Aliases: []string{"hewlett packard"}, Category: "technology"},
	{Key: "lenovo", Domain: "lenovo.com", Aliases: nil, Category: "technology"},
	{Key: "samsung", Domain: "samsung.com", Aliases: nil, Category: "technology"},
	{Key: "sony", Domain: "sony.com", Aliases: nil, Category: "technology"},
	{Key: "adobe", Domain: "adobe.com", Aliases: nil, Category: "technology"},
	{Key: "atlassian", Domain: "atlassian.com", Aliases: []string{"jira"}, Category: "technology"},
	{Key: "dropbox", Domain: "dropbox.com", Aliases: nil, Category: "technology"},
	{Key: "cloudflare", Domain: "cloudflare.com", Aliases: []string{"net"}, Category: "technology"},
	{Key: "digitalocean", Domain: "digitalocean.com", Aliases: nil, Category: "technology"},
	{Key: "heroku", Domain: "heroku.com", Aliases: nil, Category: "technology"},
	{Key: "vercel", Domain: "vercel.com", Aliases: nil, Category: "technology"},
	{Key: "netlify", Domain: "netlify.com", Aliases: nil, Category: "technology"},
	{Key: "mongodb", Domain: "mongodb.com", Aliases: []string{"mongo"}, Category: "technology"},
	{Key: "redis", Domain: "redis.io", Aliases: nil, Category: "technology"},
	{Key: "elastic", Domain: "elastic.co", Aliases: []string{"elasticsearch"}, Category: "technology"},
	{Key: "docker", Domain: "docker.com", Aliases: nil, Category: "technology"},
	{Key: "hashicorp", Domain: "hashicorp.com", Aliases: []string{"terraform"}, Category: "technology"},
	{Key: "tesla", Domain: "tesla.com", Aliases: []string{"tsla"}, Category: "automotive"},
	{Key: "ford", Domain: "ford.com", Aliases: nil, Category: "automotive"},
	{Key: "general motors", Domain: "gm.com", Aliases: []string{"gm", "chevrolet"}, Category: "automotive"},
	{Key: "toyota", Domain: "toyota.com", Aliases: nil, Category: "automotive"},
	{Key: "honda", Domain: "honda.com", Aliases: nil, Category: "automotive"},
	{Key: "bmw", Domain: "bmw.com", Aliases: nil, Category: "automotive"},
	{Key: "mercedes benz", Domain: "mercedes-benz.com", Aliases: []string{"mercedes", "daimler"}, Category: "automotive"},
	{Key: "volkswagen", Domain: "vw.com", Aliases: []string{"vw"}, Category: "automotive"},
	{Key: "rivian", Domain: "rivian.com", Aliases: nil, Category: "automotive"},
	{Key: "uber", Domain: "uber.com", Aliases: nil, Category: "travel"},
	{Key: "lyft", Domain: "lyft.com", Aliases: nil, Category: "travel"},
	{Key: "airbnb", Domain: "airbnb.com", Aliases: []string{"abnb"}, Category: "travel"},
	{Key: "booking", Domain: "booking.com", Aliases: []string{"booking holdings"}, Category: "travel"},
	{Key: "expedia", Domain: "expedia.com", Aliases: nil, Category: "travel"},
	{Key: "delta", Domain: "delta.com", Aliases: []string{"delta air lines"}, Category: "airline"},
	{Key: "united airlines", Domain: "united.com", Aliases: []string{"united"}, Category: "airline"},
	{Key: "american airlines", Domain: "aa.com", Aliases: nil, Category: "airline"},
	{Key: "southwest", Domain: "southwest.com", Aliases: nil, Category: "airline"},
	{Key: "walmart", Domain: "walmart.com", Aliases: []string{"wmt"}, Category: "retail"},
	{Key: "target", Domain: "target.com", Aliases: nil, Category: "retail"},
	{Key: "costco", Domain: "costco.com", Aliases: nil, Category: "retail"},
	{Key: "home depot", Domain: "homedepot.com", Aliases: nil, Category: "retail"},
	{Key: "ikea", Domain: "ikea.com", Aliases: nil, Category: "retail"},
	{Key: "ebay", Domain: "ebay.com", Aliases: nil, Category: "retail"},
	{Key: "etsy", Domain: "etsy.com", Aliases: nil, Category: "retail"},
	{Key: "wayfair", Domain: "wayfair.com", Aliases: nil, Category: "retail"},
	{Key: "nike", Domain: "nike.com", Aliases: nil, Category: "apparel"},
	{Key: "adidas", Domain: "adidas.com", Aliases: nil, Category: "apparel"},
	{Key: "lululemon", Domain: "lululemon.com", Aliases: []string{"lulu"}, Category: "apparel"},
	{Key: "patagonia", Domain: "patagonia.com", Aliases: nil, Category: "apparel"},
	{Key: "coca cola", Domain: "coca-cola.com", Aliases: []string{"coke"}, Category: "food"},
	{Key: "pepsi", Domain: "pepsi.com", Aliases: []string{"pepsico"}, Category: "food"},
	{Key: "starbucks", Domain: "starbucks.com", Aliases: []string{"sbux"}, Category: "food"},
	{Key: "mcdonalds", Domain: "mcdonalds.com", Aliases: []string{"mcd"}, Category: "food"},
	{Key: "chipotle", Domain: "chipotle.com", Aliases: []string{"cmg"}, Category: "food"},
	{Key: "dominos", Domain: "dominos.com", Aliases: nil, Category: "food"},
	{Key: "doordash", Domain: "doordash.com", Aliases: []string{"dash"}, Category: "food"},
	{Key: "instacart", Domain: "instacart.com", Aliases: nil, Category: "food"},
	{Key: "spotify", Domain: "spotify.com", Aliases: []string{"spot"}, Category: "media"},
	{Key: "disney", Domain: "disney.com", Aliases: []string{"walt disney", "dis"}, Category: "media"},
	{Key: "warner bros", Domain: "warnerbros.com", Aliases: []string{"warner brothers", "wb"}, Category: "media"},
	{Key: "paramount", Domain: "paramount.com", Aliases: nil, Category: "media"},
	{Key: "twitch", Domain: "twitch.tv", Aliases: nil, Category: "media"},
	{Key: "nintendo", Domain: "nintendo.com", Aliases: nil, Category: "gaming"},
	{Key: "valve", Domain: "valvesoftware.com", Aliases: []string{"steam"}, Category: "gaming"},
	{Key: "epic games", Domain: "epicgames.com", Aliases: []string{"epic", "fortnite"}, Category: "gaming"},
	{Key: "electronic arts", Domain: "ea.com", Aliases: []string{"ea"}, Category: "gaming"},
	{Key: "riot games", Domain: "riotgames.com", Aliases: []string{"riot"}, Category: "gaming"},
	{Key: "verizon", Domain: "verizon.com", Aliases: []string{"vz"}, Category: "telecom"},
	{Key: "att", Domain: "att.com", Aliases: []string{"at&t"}, Category: "telecom"},
	{Key: "tmobile", Domain: "t-mobile.com", Aliases: []string{"t mobile"}, Category: "telecom"},
	{Key: "comcast", Domain: "comcast.com", Aliases: []string{"xfinity"}, Category: "telecom"},
	{Key: "fedex", Domain: "fedex.com", Aliases: nil, Category: "logistics"},
	{Key: "ups", Domain: "ups.com", Aliases: []string{"united parcel service"}, Category: "logistics"},
	{Key: "usps", Domain: "usps.com", Aliases: nil, Category: "logistics"},
	{Key: "shell", Domain: "shell.com", Aliases: nil, Category: "energy"},
	{Key: "exxonmobil", Domain: "exxonmobil.com", Aliases: []string{"exxon", "xom"}, Category: "energy"},
	{Key: "chevron", Domain: "chevron.com", Aliases: []string{"cvx"}, Category: "energy"},
	{Key: "bp", Domain: "bp.com", Aliases: nil, Category: "energy"},
	{Key: "marriott", Domain: "marriott.com", Aliases: nil, Category: "hospitality"},
	{Key: "hilton", Domain: "hilton.com", Aliases: nil, Category: "hospitality"},
	{Key: "hyatt", Domain: "hyatt.com", Aliases: nil, Category: "hospitality"},
	{Key: "pfizer", Domain: "pfizer.com", Aliases: []string{"pfe"}, Category: "healthcare"},
	{Key: "moderna", Domain: "modernatx.com", Aliases: nil, Category: "healthcare"},
	{Key: "johnson johnson", Domain: "jnj.com", Aliases: []string{"jnj"}, Category: "healthcare"},
	{Key: "unitedhealth", Domain: "unitedhealthgroup.com", Aliases: []string{"uhc"}, Category: "healthcare"},
	{Key: "cvs", Domain: "cvs.com", Aliases: []string{"cvs health"}, Category: "healthcare"},
	{Key: "walgreens", Domain: "walgreens.com", Aliases: nil, Category: "healthcare"},
}
