package tagmap

import s "github.com/simonhull/commontags/internal/schema"

// taglibTags maps TagLib property names. TagLib already unifies the
// container vocabularies, so a single table covers every format it reads.
// Role properties arrive as "PERFORMER:<instrument>".
var taglibTags = TagMap{
	"TITLE":                      s.Title,
	"ARTIST":                     s.Artist,
	"ARTISTS":                    s.Artists,
	"ALBUMARTIST":                s.AlbumArtist,
	"ALBUM":                      s.Album,
	"DATE":                       s.Date,
	"ORIGINALDATE":               s.OriginalDate,
	"RELEASEDATE":                s.ReleaseDate,
	"COMMENT":                    s.Comment,
	"TRACKNUMBER":                s.Track,
	"DISCNUMBER":                 s.Disk,
	"TRACKTOTAL":                 s.TotalTracks,
	"DISCTOTAL":                  s.TotalDiscs,
	"GENRE":                      s.Genre,
	"COMPOSER":                   s.Composer,
	"LYRICS":                     s.Lyrics,
	"ALBUMSORT":                  s.AlbumSort,
	"TITLESORT":                  s.TitleSort,
	"ARTISTSORT":                 s.ArtistSort,
	"ALBUMARTISTSORT":            s.AlbumArtistSort,
	"COMPOSERSORT":               s.ComposerSort,
	"WORK":                       s.Work,
	"MOVEMENTNAME":               s.Movement,
	"MOVEMENTNUMBER":             s.MovementIndex,
	"MOVEMENTCOUNT":              s.MovementTotal,
	"SHOWWORKMOVEMENT":           s.ShowMovement,
	"PICTURE":                    s.Picture,
	"LYRICIST":                   s.Lyricist,
	"WRITER":                     s.Writer,
	"CONDUCTOR":                  s.Conductor,
	"PERFORMER":                  s.PerformerInstrument,
	"REMIXER":                    s.Remixer,
	"ARRANGER":                   s.Arranger,
	"ENGINEER":                   s.Engineer,
	"PRODUCER":                   s.Producer,
	"DJMIXER":                    s.DJMixer,
	"MIXER":                      s.Mixer,
	"LABEL":                      s.Label,
	"GROUPING":                   s.Grouping,
	"SUBTITLE":                   s.Subtitle,
	"DISCSUBTITLE":               s.DiscSubtitle,
	"COMPILATION":                s.Compilation,
	"BPM":                        s.BPM,
	"INITIALKEY":                 s.MusicalKey,
	"MOOD":                       s.Mood,
	"MEDIA":                      s.Media,
	"CATALOGNUMBER":              s.CatalogNumber,
	"RELEASESTATUS":              s.ReleaseStatus,
	"RELEASETYPE":                s.ReleaseType,
	"RELEASECOUNTRY":             s.ReleaseCountry,
	"SCRIPT":                     s.Script,
	"LANGUAGE":                   s.Language,
	"COPYRIGHT":                  s.Copyright,
	"LICENSE":                    s.License,
	"ENCODEDBY":                  s.EncodedBy,
	"ENCODING":                   s.EncoderSettings,
	"BARCODE":                    s.Barcode,
	"ISRC":                       s.ISRC,
	"ASIN":                       s.ASIN,
	"PODCAST":                    s.Podcast,
	"PODCASTURL":                 s.PodcastURL,
	"PODCASTID":                  s.PodcastID,
	"PODCASTCATEGORY":            s.Category,
	"PODCASTDESC":                s.Description,
	"PODCASTKEYWORDS":            s.Keywords,
	"ORIGINALALBUM":              s.OriginalAlbum,
	"ORIGINALARTIST":             s.OriginalArtist,
	"URL":                        s.Website,
	"MUSICBRAINZ_TRACKID":        s.MusicBrainzRecordingID,
	"MUSICBRAINZ_RELEASETRACKID": s.MusicBrainzTrackID,
	"MUSICBRAINZ_ALBUMID":        s.MusicBrainzAlbumID,
	"MUSICBRAINZ_ARTISTID":       s.MusicBrainzArtistID,
	"MUSICBRAINZ_ALBUMARTISTID":  s.MusicBrainzAlbumArtistID,
	"MUSICBRAINZ_RELEASEGROUPID": s.MusicBrainzReleaseGroupID,
	"MUSICBRAINZ_WORKID":         s.MusicBrainzWorkID,
	"ACOUSTID_ID":                s.AcoustIDID,
	"ACOUSTID_FINGERPRINT":       s.AcoustIDFingerprint,
	"MUSICIP_PUID":               s.MusicIPPUID,
	"REPLAYGAIN_TRACK_GAIN":      s.ReplayGainTrackGain,
	"REPLAYGAIN_TRACK_PEAK":      s.ReplayGainTrackPeak,
	"REPLAYGAIN_ALBUM_GAIN":      s.ReplayGainAlbumGain,
	"REPLAYGAIN_ALBUM_PEAK":      s.ReplayGainAlbumPeak,
}
