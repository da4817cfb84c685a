package profile

import (
	"rilliex/internal/domain/gallery"
	"rilliex/internal/domain/schedule"
	"rilliex/internal/domain/social"
)

// OwnerName is the site owner's display name.
const OwnerName = "Rilliex"

// Bio is the owner's short biography shown on the hero section.
var Bio = Bilingual{
	EN: "Tennis Content Creator & Trick Shot Artist. Bringing entertainment to the court with high-energy challenges and tutorials.",
	ZH: "网球内容创作者 & 花式击球艺术家。通过高能挑战和教学视频，为球场带来无限乐趣。",
}

// Default singleton image references. The hero ships as a bundled asset;
// the profile portrait starts as a remote placeholder until the owner
// uploads their own.
const (
	DefaultHeroImage    = "/image/cover.jpg"
	DefaultProfileImage = "https://images.unsplash.com/photo-1531427186611-ecfd6d936c79?q=80&w=600&auto=format&fit=crop"
)

// Coaching describes the owner's coaching offering.
var Coaching = CoachingInfo{
	Title: Bilingual{
		EN: "National First-Class Tennis Athlete",
		ZH: "国家一级网球运动员",
	},
	Locations: Bilingual{
		EN: "Perth (Aus) / Chengdu / Wanning",
		ZH: "澳大利亚珀斯 / 成都 / 万宁",
	},
	Targets: BilingualList{
		EN: []string{"Zero Foundation", "Advanced", "Sparring", "Kids", "Adults"},
		ZH: []string{"零基础", "进阶", "陪练", "少儿", "成人"},
	},
	Formats: BilingualList{
		EN: []string{"One-on-One", "Group Sessions"},
		ZH: []string{"一对一", "一对多"},
	},
}

// Achievements lists the owner's competition results, newest first.
var Achievements = []Achievement{
	{ID: "a1", Year: "2022", TitleEN: "25th Shandong Games: Women's Group A Team 2nd, Doubles 3rd", TitleZH: "山东省第二十五届运动会女子甲组团体第二名、双打第三名", Icon: IconMedal},
	{ID: "a2", Year: "2021", TitleEN: "Shandong Tennis Championship: Singles 3rd, Doubles 1st", TitleZH: "2021年山东省网球冠军赛单打第三名 双打第一名", Icon: IconTrophy},
	{ID: "a3", Year: "2021", TitleEN: "Shandong Tennis Tournament: Singles 2nd, Doubles 1st", TitleZH: "2021年山东省网球锦标赛单打第二名、双打第一名", Icon: IconTrophy},
	{ID: "a4", Year: "2020", TitleEN: "Shandong Tennis Championship: Singles 3rd", TitleZH: "2020年山东省网球冠军赛单打第三名", Icon: IconMedal},
	{ID: "a5", Year: "2020", TitleEN: "Shandong Tennis Tournament: Team 1st, Doubles 1st, Singles 3rd", TitleZH: "2020年山东省网球锦标赛团体第一名、双打第一名、单打第三名", Icon: IconTrophy},
	{ID: "a6", Year: "2019", TitleEN: "Shandong Youth Ranking Finals: Doubles 1st, Singles 2nd", TitleZH: "2019年山东省青少年网球排名赛总决赛双打第一名、单打第二名", Icon: IconTrophy},
	{ID: "a7", Year: "2019", TitleEN: "Shandong Tennis Championship: Singles 3rd", TitleZH: "2019年山东省网球冠军赛单打第三名", Icon: IconMedal},
	{ID: "a8", Year: "2019", TitleEN: "Shandong Tennis Tournament: Singles 3rd, Team 1st", TitleZH: "2019年山东省网球锦标赛单打第三名、团体第一名", Icon: IconTrophy},
	{ID: "a9", Year: "2018", TitleEN: "24th Shandong Games: Team 1st", TitleZH: "2018年山东省第二十四届运动会团体第一名", Icon: IconTrophy},
}

// DefaultSchedule seeds the weekly content calendar on first run.
func DefaultSchedule() []schedule.Event {
	return []schedule.Event{
		{ID: "1", Day: schedule.Monday, Time: "10:00 AM", Title: "Trick Shot Filming", Location: "Clay Court 1", Type: schedule.TypeTraining, Details: "Filming new impossible angle serves."},
		{ID: "2", Day: schedule.Tuesday, Time: "02:00 PM", Title: "Editing Session", Location: "Studio", Type: schedule.TypeTraining, Details: "Post-production for YouTube vlog."},
		{ID: "3", Day: schedule.Thursday, Time: "04:00 PM", Title: "Collab Match", Location: "City Tennis Center", Type: schedule.TypeMatch, Details: "Exhibition set vs local pro."},
		{ID: "4", Day: schedule.Friday, Time: "11:00 AM", Title: "Gear Review", Location: "Pro Shop", Type: schedule.TypeTraining, Details: "Testing the new Wilson prototype."},
		{ID: "5", Day: schedule.Saturday, Time: "01:00 PM", Title: "Fan Meetup", Location: "Public Courts", Type: schedule.TypeTournament, Details: "Open hitting session with subscribers."},
	}
}

// DefaultGallery seeds the media gallery on first run.
func DefaultGallery() []gallery.Photo {
	return []gallery.Photo{
		{ID: "p1", URL: "https://images.unsplash.com/photo-1626245233075-2ac263574c05?q=80&w=1000&auto=format&fit=crop", Alt: "Clay court sliding", Category: gallery.CategoryAction, Type: gallery.TypeImage, CaptionEN: "Sliding on the red clay", CaptionZH: "红土滑步", Transform: gallery.DefaultTransform()},
		{ID: "p2", URL: "https://images.unsplash.com/photo-1530915516947-9ce5e5265912?q=80&w=1000&auto=format&fit=crop", Alt: "New Racket Unboxing", Category: gallery.CategoryGear, Type: gallery.TypeImage, Transform: gallery.DefaultTransform()},
		{ID: "p3", URL: "https://images.unsplash.com/photo-1622163642998-1ea36746b147?q=80&w=1000&auto=format&fit=crop", Alt: "Trick shot practice", Category: gallery.CategoryAction, Type: gallery.TypeVideo, CaptionEN: "Practice makes perfect", CaptionZH: "熟能生巧", Transform: gallery.DefaultTransform()},
		{ID: "p4", URL: "https://images.unsplash.com/photo-1560155016-bd4879ae8f21?q=80&w=1000&auto=format&fit=crop", Alt: "Serve technique slow-mo", Category: gallery.CategoryTraining, Type: gallery.TypeVideo, Transform: gallery.DefaultTransform()},
		{ID: "p5", URL: "https://images.unsplash.com/photo-1599586120429-48285b6a8a81?q=80&w=1000&auto=format&fit=crop", Alt: "Sunset training", Category: gallery.CategoryLifestyle, Type: gallery.TypeImage, CaptionEN: "Golden hour hits different", CaptionZH: "黄昏训练时刻", Transform: gallery.DefaultTransform()},
	}
}

// DefaultSocialLinks seeds the social-media directory on first run.
func DefaultSocialLinks() []social.Link {
	return []social.Link{
		{ID: "s1", Platform: social.PlatformYouTube, Handle: "@RilliexTennis", URL: "https://youtube.com", Followers: "50K"},
		{ID: "s2", Platform: social.PlatformInstagram, Handle: "@rilliex_official", URL: "https://instagram.com", Followers: "120K"},
		{ID: "s3", Platform: social.PlatformBilibili, Handle: "Rilliex网球", URL: "https://bilibili.com", Followers: "85K"},
		{ID: "s4", Platform: social.PlatformXiaohongshu, Handle: "Rilliex", URL: "https://xiaohongshu.com", Followers: "90K"},
	}
}
