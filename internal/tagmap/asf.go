package tagmap

import s "github.com/simonhull/commontags/internal/schema"

// asfTags maps ASF content description and extended content description
// attribute names (WMA, WMV).
var asfTags = TagMap{
	"Title":                      s.Title,
	"Author":                     s.Artist,
	"WM/ARTISTS":                 s.Artists,
	"WM/AlbumArtist":             s.AlbumArtist,
	"WM/AlbumTitle":              s.Album,
	"WM/Year":                    s.Date,
	"WM/OriginalReleaseTime":     s.OriginalDate,
	"WM/OriginalReleaseYear":     s.OriginalYear,
	"Description":                s.Comment,
	"WM/TrackNumber":             s.Track,
	"WM/PartOfSet":               s.Disk,
	"WM/Genre":                   s.Genre,
	"WM/Composer":                s.Composer,
	"WM/Lyrics":                  s.Lyrics,
	"WM/AlbumSortOrder":          s.AlbumSort,
	"WM/TitleSortOrder":          s.TitleSort,
	"WM/ArtistSortOrder":         s.ArtistSort,
	"WM/AlbumArtistSortOrder":    s.AlbumArtistSort,
	"WM/ComposerSortOrder":       s.ComposerSort,
	"WM/Writer":                  s.Lyricist,
	"WM/Conductor":               s.Conductor,
	"WM/ModifiedBy":              s.Remixer,
	"WM/Engineer":                s.Engineer,
	"WM/Producer":                s.Producer,
	"WM/DJMixer":                 s.DJMixer,
	"WM/Mixer":                   s.Mixer,
	"WM/Publisher":               s.Label,
	"WM/ContentGroupDescription": s.Grouping,
	"WM/SubTitle":                s.Subtitle,
	"WM/SetSubTitle":             s.DiscSubtitle,
	"WM/IsCompilation":           s.Compilation,
	"WM/SharedUserRating":        s.Rating,
	"WM/BeatsPerMinute":          s.BPM,
	"WM/Mood":                    s.Mood,
	"WM/Media":                   s.Media,
	"WM/CatalogNo":               s.CatalogNumber,
	"WM/Script":                  s.Script,
	"WM/Language":                s.Language,
	"Copyright":                  s.Copyright,
	"LICENSE":                    s.License,
	"WM/EncodedBy":               s.EncodedBy,
	"WM/EncodingSettings":        s.EncoderSettings,
	"WM/Barcode":                 s.Barcode,
	"WM/ISRC":                    s.ISRC,
	"WM/InitialKey":              s.MusicalKey,
	"WM/Work":                    s.Work,
	"WM/AuthorURL":               s.Website,
	"WM/Picture":                 s.Picture,
	"ASIN":                       s.ASIN,

	"MusicBrainz/Album Status":          s.ReleaseStatus,
	"MusicBrainz/Album Type":            s.ReleaseType,
	"MusicBrainz/Album Release Country": s.ReleaseCountry,
	"MusicBrainz/Track Id":              s.MusicBrainzRecordingID,
	"MusicBrainz/Release Track Id":      s.MusicBrainzTrackID,
	"MusicBrainz/Album Id":              s.MusicBrainzAlbumID,
	"MusicBrainz/Artist Id":             s.MusicBrainzArtistID,
	"MusicBrainz/Album Artist Id":       s.MusicBrainzAlbumArtistID,
	"MusicBrainz/Release Group Id":      s.MusicBrainzReleaseGroupID,
	"MusicBrainz/Work Id":               s.MusicBrainzWorkID,
	"MusicBrainz/TRM Id":                s.MusicBrainzTRMID,
	"MusicBrainz/Disc Id":               s.MusicBrainzDiscID,
	"Acoustid/Id":                       s.AcoustIDID,
	"Acoustid/Fingerprint":              s.AcoustIDFingerprint,
	"MusicIP/PUID":                      s.MusicIPPUID,

	"REPLAYGAIN_TRACK_GAIN": s.ReplayGainTrackGain,
	"REPLAYGAIN_TRACK_PEAK": s.ReplayGainTrackPeak,
	"REPLAYGAIN_ALBUM_GAIN": s.ReplayGainAlbumGain,
	"REPLAYGAIN_ALBUM_PEAK": s.ReplayGainAlbumPeak,
}
