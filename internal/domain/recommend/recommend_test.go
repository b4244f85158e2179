package recommend_test

import (
	"context"
	"strings"
	"testing"

	"github.com/okian/stylemate/internal/domain/model"
	"github.com/okian/stylemate/internal/domain/recommend"
	"github.com/okian/stylemate/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func mustProfile(o types.Occasion, g types.Gender, a types.AgeBracket, b types.BodyType, s types.SkinTone) model.Profile {
	p, err := model.NewProfile(o, g, a, b, s)
	if err != nil {
		panic(err)
	}
	return p
}

func TestPickTops(t *testing.T) {
	Convey("Given the tops picker", t, func() {
		Convey("When the age bracket is newborn", func() {
			Convey("Then every occasion and gender yields the onesie", func() {
				for _, o := range types.Occasions() {
					for _, g := range types.Genders() {
						So(recommend.PickTops(o, g, types.Newborn), ShouldResemble,
							[]recommend.Item{{Label: "Cotton onesie", Keyword: "newborn cotton onesie"}})
					}
				}
			})
		})

		Convey("When a woman dresses for a party or the beach", func() {
			Convey("Then the catalogue fans out to between 3 and 10 items", func() {
				So(len(recommend.PickTops(types.Party, types.Woman, types.Adult)), ShouldBeBetweenOrEqual, 3, 10)
				So(len(recommend.PickTops(types.Beach, types.Woman, types.Teen)), ShouldBeBetweenOrEqual, 3, 10)
			})
		})

		Convey("When a man or a kid dresses for any occasion", func() {
			Convey("Then there are one or two items", func() {
				for _, o := range types.Occasions() {
					So(len(recommend.PickTops(o, types.Man, types.Adult)), ShouldBeBetweenOrEqual, 1, 2)
					So(len(recommend.PickTops(o, types.Kid, types.Child)), ShouldBeBetweenOrEqual, 1, 2)
				}
			})
		})

		Convey("When the occasion is unknown", func() {
			Convey("Then the casual top is returned", func() {
				So(recommend.PickTops(types.Occasion("opera"), types.Woman, types.Adult), ShouldResemble,
					[]recommend.Item{{Label: "Casual top / t-shirt", Keyword: "casual top"}})
			})
		})

		Convey("When the caller mutates a returned slice", func() {
			items := recommend.PickTops(types.Office, types.Woman, types.Adult)
			items[0].Label = "changed"

			Convey("Then the table is unaffected", func() {
				So(recommend.PickTops(types.Office, types.Woman, types.Adult)[0].Label, ShouldEqual, "Formal blouse")
			})
		})
	})
}

func TestPickJeans(t *testing.T) {
	Convey("Given the jeans picker", t, func() {
		Convey("Then every woman and man body type has one to four styles", func() {
			for _, g := range []types.Gender{types.Woman, types.Man} {
				for _, b := range types.BodyTypesFor(g, types.Adult) {
					n := len(recommend.PickJeans(g, b))
					So(n, ShouldBeBetweenOrEqual, 1, 4)
				}
			}
		})

		Convey("Then a pear shaped woman gets straight and bootcut cuts", func() {
			So(recommend.PickJeans(types.Woman, types.Pear), ShouldResemble, []string{"Straight fit jeans", "Bootcut jeans"})
		})

		Convey("Then kids and unknown body types fall back to comfort fit", func() {
			So(recommend.PickJeans(types.Kid, types.ChildBody), ShouldResemble, []string{"Comfort fit jeans"})
			So(recommend.PickJeans(types.Man, types.Pear), ShouldResemble, []string{"Comfort fit jeans"})
		})

		Convey("Then styles are wrapped as Jeans items", func() {
			So(recommend.JeansItems([]string{"Bootcut jeans"}), ShouldResemble,
				[]recommend.Item{{Label: "Jeans", Keyword: "Bootcut jeans"}})
		})
	})
}

func TestPickFootwearAndAccessories(t *testing.T) {
	Convey("Given the footwear and accessories picker", t, func() {
		Convey("Then newborns always get booties and a cap", func() {
			for _, o := range types.Occasions() {
				So(recommend.PickFootwearAndAccessories(o, types.Newborn), ShouldResemble, []recommend.Item{
					{Label: "Soft baby booties", Keyword: "newborn socks"},
					{Label: "Cotton cap", Keyword: "newborn cap"},
				})
			}
		})

		Convey("Then office, party, gym and beach yield three items", func() {
			for _, o := range []types.Occasion{types.Office, types.Party, types.Gym, types.Beach} {
				So(len(recommend.PickFootwearAndAccessories(o, types.Adult)), ShouldEqual, 3)
			}
		})

		Convey("Then the remaining occasions fall back to the casual pair", func() {
			for _, o := range []types.Occasion{types.Casual, types.College, types.Traditional} {
				So(recommend.PickFootwearAndAccessories(o, types.Senior), ShouldResemble, []recommend.Item{
					{Label: "Sneakers / heels", Keyword: "trendy footwear"},
					{Label: "Sling bag", Keyword: "fashion bag"},
				})
			}
		})
	})
}

func TestEngineRecommend(t *testing.T) {
	Convey("Given a strict engine", t, func() {
		engine := recommend.NewEngine(recommend.WithStrict(true))
		ctx := context.Background()

		Convey("When a pear shaped adult woman dresses for the office", func() {
			p := mustProfile(types.Office, types.Woman, types.Adult, types.Pear, types.Medium)
			rec := engine.Recommend(ctx, p)

			Convey("Then the items are tops, jeans, then footwear and accessories", func() {
				var labels []string
				for _, e := range rec.Items {
					labels = append(labels, e.Label+"|"+e.Keyword+"|"+string(e.Category))
				}
				So(labels, ShouldResemble, []string{
					"Formal blouse|formal blouse|top",
					"Jeans|Straight fit jeans|bottom",
					"Jeans|Bootcut jeans|bottom",
					"Formal shoes|formal shoes|footwear_accessory",
					"Office bag|office bag|footwear_accessory",
					"Watch|watch|footwear_accessory",
				})
			})

			Convey("And each item carries five links with the women prefix", func() {
				for _, e := range rec.Items {
					So(len(e.Links), ShouldEqual, 5)
					for _, l := range e.Links {
						So(l.URL, ShouldContainSubstring, "women+")
					}
				}
				amazon, _ := rec.Items[0].Links.Get("Amazon")
				So(amazon, ShouldEqual, "https://www.amazon.in/s?k=women+formal+blouse")
			})

			Convey("And the summary names the occasion, age and tone", func() {
				So(rec.Summary, ShouldEqual, "Selected based on office / formal, adult, and medium skin tone.")
			})
		})

		Convey("When the occasion is traditional", func() {
			p := mustProfile(types.Traditional, types.Man, types.Adult, types.Broad, types.Deep)

			Convey("Then no jeans are recommended", func() {
				for _, it := range engine.Items(ctx, p) {
					So(it.Label, ShouldNotEqual, recommend.JeansLabel)
				}
			})
		})

		Convey("When the profile is a newborn", func() {
			p := mustProfile(types.Party, types.Woman, types.Newborn, "", types.Light)

			Convey("Then only the fixed newborn items are returned", func() {
				So(engine.Items(ctx, p), ShouldResemble, []recommend.Item{
					{Label: "Cotton onesie", Keyword: "newborn cotton onesie"},
					{Label: "Soft baby booties", Keyword: "newborn socks"},
					{Label: "Cotton cap", Keyword: "newborn cap"},
				})
			})
		})

		Convey("Then every valid profile yields a non-empty list", func() {
			for _, o := range types.Occasions() {
				for _, g := range types.Genders() {
					for _, a := range types.AgeBrackets() {
						for _, b := range types.BodyTypesFor(g, a) {
							p := mustProfile(o, g, a, b, types.Tan)
							So(func() { engine.Recommend(ctx, p) }, ShouldNotPanic)
							So(len(engine.Items(ctx, p)), ShouldBeGreaterThan, 0)
						}
					}
				}
			}
		})

		Convey("When the profile was never validated", func() {
			Convey("Then a strict engine fails loudly", func() {
				So(func() { engine.Items(ctx, model.Profile{}) }, ShouldPanic)
			})
		})
	})

	Convey("Given a production engine", t, func() {
		engine := recommend.NewEngine()

		Convey("When the profile was never validated", func() {
			items := engine.Items(context.Background(), model.Profile{})

			Convey("Then it falls back to the casual branch", func() {
				So(items[0].Keyword, ShouldEqual, "casual top")
				So(strings.Join([]string{items[len(items)-2].Keyword, items[len(items)-1].Keyword}, ","),
					ShouldEqual, "trendy footwear,fashion bag")
			})
		})
	})
}
