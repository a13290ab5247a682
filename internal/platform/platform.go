package platform

// StatLabels - подписи показателей профиля, свои у каждой платформы.
type StatLabels struct {
	Followers string
	Following string
	Posts     string
}

// Platform описывает одну поддерживаемую платформу.
type Platform struct {
	Name           string
	Slug           string
	Logo           string
	ProfilePicture bool
	HasStats       bool
	Labels         StatLabels
}

var platforms = []Platform{
	{
		Name:           "Instagram",
		Slug:           "instagram",
		Logo:           "https://png.pngtree.com/png-clipart/20180626/ourmid/pngtree-instagram-icon-instagram-logo-png-image_3584853.png",
		ProfilePicture: true,
		HasStats:       true,
		Labels:         StatLabels{Followers: "Followers", Following: "Following", Posts: "Posts"},
	},
	{
		Name:           "Facebook",
		Slug:           "facebook",
		Logo:           "https://acbrd.org.au/wp-content/uploads/2020/08/facebook-circular-logo.png",
		ProfilePicture: true,
		HasStats:       true,
		Labels:         StatLabels{Followers: "Friends", Following: "Likes", Posts: "Posts"},
	},
	{
		Name:           "WhatsApp",
		Slug:           "whatsapp",
		Logo:           "/whatsapp.png",
		ProfilePicture: true,
		HasStats:       true,
		Labels:         StatLabels{Followers: "Contacts", Following: "Groups", Posts: "Statuses"},
	},
	{
		Name:           "TikTok",
		Slug:           "tiktok",
		Logo:           "/tiktok.png",
		ProfilePicture: true,
		HasStats:       true,
		Labels:         StatLabels{Followers: "Followers", Following: "Following", Posts: "Videos"},
	},
	{
		Name:           "YouTube",
		Slug:           "youtube",
		Logo:           "/youtube.png",
		ProfilePicture: true,
		HasStats:       true,
		Labels:         StatLabels{Followers: "Subscribers", Following: "Following", Posts: "Videos"},
	},
	{
		Name:           "X",
		Slug:           "x",
		Logo:           "/x.png",
		ProfilePicture: true,
		HasStats:       true,
		Labels:         StatLabels{Followers: "Followers", Following: "Following", Posts: "Tweets"},
	},
	{
		Name: "Snapchat",
		Slug: "snapchat",
		Logo: "/snapchat.png",
	},
}

// Default - запасная платформа для неизвестных идентификаторов.
// Неизвестные значения не считаются ошибкой и отображаются с ней.
var Default = Platform{
	Name:           "Social Media",
	Slug:           "default",
	Logo:           "https://placehold.co/40x40.png",
	ProfilePicture: true,
	HasStats:       true,
	Labels:         StatLabels{Followers: "Followers", Following: "Following", Posts: "Posts"},
}

// Lookup возвращает платформу по идентификатору или Default.
func Lookup(slug string) Platform {
	for _, p := range platforms {
		if p.Slug == slug {
			return p
		}
	}
	return Default
}

// All возвращает копию списка поддерживаемых платформ.
func All() []Platform {
	out := make([]Platform, len(platforms))
	copy(out, platforms)
	return out
}
