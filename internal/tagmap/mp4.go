package tagmap

import s "github.com/simonhull/commontags/internal/schema"

const itunes = "----:com.apple.iTunes:"

// mp4Tags maps iTunes-style MP4 ilst atoms. Freeform atoms are keyed
// "----:<mean>:<name>". Decoded iTunMOVI plist entries are keyed
// "iTunMOVI:<field>".
var mp4Tags = TagMap{
	"©nam": s.Title,
	"©ART": s.Artist,
	"aART": s.AlbumArtist,
	"©alb": s.Album,
	"©day": s.Date,
	"©cmt": s.Comment,
	"©com": s.Composer,
	"trkn": s.Track,
	"disk": s.Disk,
	"©gen": s.Genre,
	"gnre": s.Genre,
	"covr": s.Picture,
	"©wrt": s.Composer,
	"©lyr": s.Lyrics,
	"soal": s.AlbumSort,
	"sonm": s.TitleSort,
	"soar": s.ArtistSort,
	"soaa": s.AlbumArtistSort,
	"soco": s.ComposerSort,
	"©grp": s.Grouping,
	"cpil": s.Compilation,
	"tmpo": s.BPM,
	"tvsh": s.TVShow,
	"tvsn": s.TVSeason,
	"tves": s.TVEpisode,
	"sosn": s.TVShowSort,
	"tven": s.TVEpisodeID,
	"tvnn": s.TVNetwork,
	"pcst": s.Podcast,
	"purl": s.PodcastURL,
	"egid": s.PodcastID,
	"cprt": s.Copyright,
	"©cpy": s.Copyright,
	"©too": s.EncodedBy,
	"©enc": s.EncodedBy,
	"pgap": s.Gapless,
	"©wrk": s.Work,
	"©mvn": s.Movement,
	"©mvi": s.MovementIndex,
	"©mvc": s.MovementTotal,
	"shwm": s.ShowMovement,
	"hdvd": s.HDVideo,
	"stik": s.Stik,
	"ldes": s.LongDescription,
	"desc": s.Description,
	"catg": s.Category,
	"keyw": s.Keywords,
	"rate": s.Rating,
	"©pub": s.Label,

	itunes + "Band":                              s.AlbumArtist,
	itunes + "ARTISTS":                           s.Artists,
	itunes + "LYRICIST":                          s.Lyricist,
	itunes + "WRITER":                            s.Writer,
	itunes + "CONDUCTOR":                         s.Conductor,
	itunes + "REMIXER":                           s.Remixer,
	itunes + "ENGINEER":                          s.Engineer,
	itunes + "PRODUCER":                          s.Producer,
	itunes + "DJMIXER":                           s.DJMixer,
	itunes + "MIXER":                             s.Mixer,
	itunes + "LABEL":                             s.Label,
	itunes + "SUBTITLE":                          s.Subtitle,
	itunes + "DISCSUBTITLE":                      s.DiscSubtitle,
	itunes + "MOOD":                              s.Mood,
	itunes + "MEDIA":                             s.Media,
	itunes + "CATALOGNUMBER":                     s.CatalogNumber,
	itunes + "SCRIPT":                            s.Script,
	itunes + "LANGUAGE":                          s.Language,
	itunes + "LICENSE":                           s.License,
	itunes + "BARCODE":                           s.Barcode,
	itunes + "ISRC":                              s.ISRC,
	itunes + "ASIN":                              s.ASIN,
	itunes + "NOTES":                             s.Comment,
	itunes + "initialkey":                        s.MusicalKey,
	itunes + "ORIGINAL ARTIST":                   s.OriginalArtist,
	itunes + "ORIGINAL ALBUM":                    s.OriginalAlbum,
	itunes + "ORIGINAL YEAR":                     s.OriginalYear,
	itunes + "ORIGINALDATE":                      s.OriginalDate,
	itunes + "RELEASEDATE":                       s.ReleaseDate,
	itunes + "MusicBrainz Album Status":          s.ReleaseStatus,
	itunes + "MusicBrainz Album Type":            s.ReleaseType,
	itunes + "MusicBrainz Album Release Country": s.ReleaseCountry,
	itunes + "MusicBrainz Track Id":              s.MusicBrainzRecordingID,
	itunes + "MusicBrainz Release Track Id":      s.MusicBrainzTrackID,
	itunes + "MusicBrainz Album Id":              s.MusicBrainzAlbumID,
	itunes + "MusicBrainz Artist Id":             s.MusicBrainzArtistID,
	itunes + "MusicBrainz Album Artist Id":       s.MusicBrainzAlbumArtistID,
	itunes + "MusicBrainz Release Group Id":      s.MusicBrainzReleaseGroupID,
	itunes + "MusicBrainz Work Id":               s.MusicBrainzWorkID,
	itunes + "MusicBrainz TRM Id":                s.MusicBrainzTRMID,
	itunes + "MusicBrainz Disc Id":               s.MusicBrainzDiscID,
	itunes + "Acoustid Id":                       s.AcoustIDID,
	itunes + "Acoustid Fingerprint":              s.AcoustIDFingerprint,
	itunes + "MusicIP PUID":                      s.MusicIPPUID,
	itunes + "fingerprint":                       s.MusicIPFingerprint,
	itunes + "replaygain_track_gain":             s.ReplayGainTrackGain,
	itunes + "replaygain_track_peak":             s.ReplayGainTrackPeak,
	itunes + "replaygain_album_gain":             s.ReplayGainAlbumGain,
	itunes + "replaygain_album_peak":             s.ReplayGainAlbumPeak,
	itunes + "replaygain_track_minmax":           s.ReplayGainTrackMinMax,
	itunes + "replaygain_album_minmax":           s.ReplayGainAlbumMinMax,
	itunes + "replaygain_undo":                   s.ReplayGainUndo,

	"iTunMOVI:producers":     s.Producer,
	"iTunMOVI:screenwriters": s.Writer,
	"iTunMOVI:studio":        s.Label,
}
