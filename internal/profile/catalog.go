package profile

import "github.com/sodam-labs/sodam/internal/curve"

// catalog is the fixed category table. Age curves are the identity on the
// bound aggregate; only the binding differs between profiles.
var catalog = []Profile{
	{Name: "베이커리", Weights: Weights{0.50, 0.15, 0.25, 0.10}, Income: curve.Up(50, 85), Age: curve.Identity(), AgeBinding: TwentiesThirties, Gender: PreferFemale}, // bakery
	{Name: "국밥집", Weights: Weights{0.50, 0.25, 0.20, 0.05}, Income: curve.Down(30, 60), Age: curve.Identity(), AgeBinding: FortiesPlus, Gender: PreferMale}, // gukbap (Korean soup) house
	{Name: "루프탑 술집", Weights: Weights{0.50, 0.20, 0.25, 0.05}, Income: curve.Prefer(60, 90, 20), Age: curve.Identity(), AgeBinding: TwentiesThirties, Gender: Balanced}, // rooftop bar
	{Name: "철물점", Weights: Weights{0.60, 0.10, 0.20, 0.10}, Income: curve.Down(40, 70), Age: curve.Identity(), AgeBinding: FortiesPlus, Gender: PreferMale}, // hardware store
	{Name: "식료품점", Weights: Weights{0.50, 0.20, 0.20, 0.10}, Income: curve.Down(30, 60), Age: curve.Identity(), AgeBinding: FortiesPlus, Gender: PreferFemale}, // grocery store
	{Name: "편의점", Weights: Weights{0.50, 0.15, 0.25, 0.10}, Income: curve.Prefer(40, 70, 20), Age: curve.Identity(), AgeBinding: TwentiesThirties, Gender: Balanced}, // convenience store
	{Name: "카페", Weights: Weights{0.50, 0.20, 0.20, 0.10}, Income: curve.Up(55, 85), Age: curve.Identity(), AgeBinding: TwentiesThirties, Gender: PreferFemale}, // cafe
	{Name: "분식집", Weights: Weights{0.50, 0.10, 0.30, 0.10}, Income: curve.Down(30, 60), Age: curve.Identity(), AgeBinding: TwentiesThirties, Gender: PreferFemale}, // bunsik snack bar
	{Name: "치킨호프", Weights: Weights{0.50, 0.15, 0.25, 0.10}, Income: curve.Prefer(45, 70, 20), Age: curve.Identity(), AgeBinding: TwentiesThirties, Gender: PreferMale}, // chicken & beer pub
	{Name: "중식당", Weights: Weights{0.55, 0.15, 0.20, 0.10}, Income: curve.Prefer(45, 70, 20), Age: curve.Identity(), AgeBinding: FortiesPlus, Gender: PreferMale}, // Chinese restaurant
	{Name: "일식집", Weights: Weights{0.50, 0.25, 0.15, 0.10}, Income: curve.Up(55, 90), Age: curve.Identity(), AgeBinding: TwentiesThirties, Gender: Balanced}, // Japanese restaurant
	{Name: "고급 레스토랑", Weights: Weights{0.50, 0.35, 0.10, 0.05}, Income: curve.Up(70, 95), Age: curve.Identity(), AgeBinding: TwentiesThirties, Gender: Balanced}, // fine dining
	{Name: "패스트푸드점", Weights: Weights{0.50, 0.15, 0.25, 0.10}, Income: curve.Prefer(40, 70, 20), Age: curve.Identity(), AgeBinding: TwentiesThirties, Gender: Balanced}, // fast food
	{Name: "피자집", Weights: Weights{0.50, 0.15, 0.25, 0.10}, Income: curve.Prefer(45, 70, 20), Age: curve.Identity(), AgeBinding: TwentiesThirties, Gender: Balanced}, // pizza
	{Name: "아이스크림 전문점", Weights: Weights{0.45, 0.15, 0.30, 0.10}, Income: curve.Prefer(45, 70, 20), Age: curve.Identity(), AgeBinding: TwentiesThirties, Gender: PreferFemale}, // ice cream parlor
	{Name: "술집(일반포차)", Weights: Weights{0.50, 0.15, 0.25, 0.10}, Income: curve.Prefer(45, 70, 20), Age: curve.Identity(), AgeBinding: TwentiesThirties, Gender: PreferMale}, // pocha (casual pub)
	{Name: "와인바", Weights: Weights{0.50, 0.30, 0.15, 0.05}, Income: curve.Up(60, 90), Age: curve.Identity(), AgeBinding: TwentiesThirties, Gender: PreferFemale}, // wine bar
	{Name: "노래방", Weights: Weights{0.50, 0.10, 0.30, 0.10}, Income: curve.Prefer(40, 70, 20), Age: curve.Identity(), AgeBinding: TwentiesThirties, Gender: Balanced}, // karaoke
	{Name: "PC방", Weights: Weights{0.50, 0.10, 0.30, 0.10}, Income: curve.Down(30, 60), Age: curve.Identity(), AgeBinding: TwentiesThirties, Gender: PreferMale}, // PC bang
	{Name: "코인노래방", Weights: Weights{0.45, 0.10, 0.35, 0.10}, Income: curve.Down(30, 60), Age: curve.Identity(), AgeBinding: TwentiesThirties, Gender: Balanced}, // coin karaoke
	{Name: "오락실", Weights: Weights{0.50, 0.10, 0.30, 0.10}, Income: curve.Down(30, 60), Age: curve.Identity(), AgeBinding: TwentiesThirties, Gender: PreferMale}, // arcade
	{Name: "학원(보습/입시)", Weights: Weights{0.55, 0.25, 0.15, 0.05}, Income: curve.Up(55, 90), Age: curve.Identity(), AgeBinding: TwentiesThirties, Gender: Balanced}, // cram school (K-12)
	{Name: "어린이집", Weights: Weights{0.55, 0.25, 0.15, 0.05}, Income: curve.Prefer(55, 85, 15), Age: curve.Identity(), AgeBinding: TwentiesThirties, Gender: PreferFemale}, // daycare
	{Name: "학원(성인/직장인)", Weights: Weights{0.50, 0.30, 0.15, 0.05}, Income: curve.Up(55, 90), Age: curve.Identity(), AgeBinding: TwentiesThirties, Gender: Balanced}, // adult academy
	{Name: "체육관(헬스장)", Weights: Weights{0.50, 0.15, 0.25, 0.10}, Income: curve.Prefer(45, 75, 20), Age: curve.Identity(), AgeBinding: TwentiesThirties, Gender: PreferMale}, // gym
	{Name: "요가/필라테스", Weights: Weights{0.50, 0.25, 0.15, 0.10}, Income: curve.Up(55, 90), Age: curve.Identity(), AgeBinding: TwentiesThirties, Gender: PreferFemale}, // yoga/pilates
	{Name: "뷰티샵(미용실)", Weights: Weights{0.55, 0.15, 0.20, 0.10}, Income: curve.Prefer(45, 75, 20), Age: curve.Identity(), AgeBinding: TwentiesThirties, Gender: PreferFemale}, // hair salon
	{Name: "네일샵", Weights: Weights{0.50, 0.25, 0.15, 0.10}, Income: curve.Up(55, 90), Age: curve.Identity(), AgeBinding: TwentiesThirties, Gender: PreferFemale}, // nail salon
	{Name: "이발소", Weights: Weights{0.55, 0.15, 0.20, 0.10}, Income: curve.Down(35, 65), Age: curve.Identity(), AgeBinding: FortiesPlus, Gender: PreferMale}, // barber shop
	{Name: "안경점", Weights: Weights{0.55, 0.15, 0.20, 0.10}, Income: curve.Prefer(45, 75, 20), Age: curve.Identity(), AgeBinding: TwentiesThirties, Gender: Balanced}, // optician
	{Name: "병원(내과/소아과)", Weights: Weights{0.60, 0.15, 0.15, 0.10}, Income: curve.Prefer(45, 80, 20), Age: curve.Identity(), AgeBinding: TwentiesThirties, Gender: Balanced}, // clinic (internal/pediatric)
	{Name: "치과", Weights: Weights{0.55, 0.25, 0.10, 0.10}, Income: curve.Up(55, 90), Age: curve.Identity(), AgeBinding: TwentiesThirties, Gender: Balanced}, // dental clinic
	{Name: "약국", Weights: Weights{0.60, 0.15, 0.15, 0.10}, Income: curve.Prefer(45, 75, 20), Age: curve.Identity(), AgeBinding: FortiesPlus, Gender: PreferFemale}, // pharmacy
	{Name: "세탁소", Weights: Weights{0.55, 0.15, 0.20, 0.10}, Income: curve.Prefer(45, 70, 20), Age: curve.Identity(), AgeBinding: FortiesPlus, Gender: PreferFemale}, // laundry
	{Name: "꽃집", Weights: Weights{0.50, 0.25, 0.15, 0.10}, Income: curve.Up(55, 90), Age: curve.Identity(), AgeBinding: TwentiesThirties, Gender: PreferFemale}, // florist
	{Name: "서점", Weights: Weights{0.50, 0.20, 0.20, 0.10}, Income: curve.Up(50, 85), Age: curve.Identity(), AgeBinding: TwentiesThirties, Gender: Balanced}, // bookstore
	{Name: "문구점", Weights: Weights{0.50, 0.10, 0.30, 0.10}, Income: curve.Down(35, 65), Age: curve.Identity(), AgeBinding: TwentiesThirties, Gender: PreferFemale}, // stationery
	{Name: "반려동물샵", Weights: Weights{0.50, 0.25, 0.15, 0.10}, Income: curve.Up(55, 90), Age: curve.Identity(), AgeBinding: TwentiesThirties, Gender: PreferFemale}, // pet shop
	{Name: "가구점", Weights: Weights{0.50, 0.25, 0.15, 0.10}, Income: curve.Up(60, 90), Age: curve.Identity(), AgeBinding: FortiesPlus, Gender: Balanced}, // furniture store
	{Name: "전자제품 매장", Weights: Weights{0.50, 0.25, 0.15, 0.10}, Income: curve.Up(60, 90), Age: curve.Identity(), AgeBinding: TwentiesThirties, Gender: PreferMale}, // electronics store
	{Name: "전통시장 점포", Weights: Weights{0.55, 0.15, 0.20, 0.10}, Income: curve.Down(30, 60), Age: curve.Identity(), AgeBinding: FortiesPlus, Gender: PreferFemale}, // traditional market stall
	{Name: "푸드트럭", Weights: Weights{0.45, 0.20, 0.25, 0.10}, Income: curve.Down(30, 60), Age: curve.Identity(), AgeBinding: TwentiesThirties, Gender: Balanced}, // food truck
	{Name: "중고매장(리세일샵)", Weights: Weights{0.50, 0.15, 0.25, 0.10}, Income: curve.Down(35, 65), Age: curve.Identity(), AgeBinding: TwentiesThirties, Gender: Balanced}, // resale shop
	{Name: "골프연습장", Weights: Weights{0.55, 0.30, 0.10, 0.05}, Income: curve.Up(65, 95), Age: curve.Identity(), AgeBinding: FortiesPlus, Gender: PreferMale}, // golf range
	{Name: "클라이밍장", Weights: Weights{0.50, 0.20, 0.25, 0.05}, Income: curve.Up(50, 85), Age: curve.Identity(), AgeBinding: TwentiesThirties, Gender: Balanced}, // climbing gym
	{Name: "헌책방", Weights: Weights{0.55, 0.10, 0.25, 0.10}, Income: curve.Down(35, 65), Age: curve.Identity(), AgeBinding: TwentiesThirties, Gender: PreferMale}, // used bookstore
	{Name: "사진관", Weights: Weights{0.50, 0.20, 0.20, 0.10}, Income: curve.Up(50, 85), Age: curve.Identity(), AgeBinding: TwentiesThirties, Gender: PreferFemale}, // photo studio
	{Name: "코워킹 스페이스", Weights: Weights{0.50, 0.25, 0.20, 0.05}, Income: curve.Up(55, 90), Age: curve.Identity(), AgeBinding: TwentiesThirties, Gender: Balanced}, // coworking space
	{Name: "공유주방", Weights: Weights{0.50, 0.20, 0.20, 0.10}, Income: curve.Up(50, 85), Age: curve.Identity(), AgeBinding: TwentiesThirties, Gender: Balanced}, // shared kitchen
	{Name: "전통찻집", Weights: Weights{0.50, 0.25, 0.15, 0.10}, Income: curve.Up(55, 90), Age: curve.Identity(), AgeBinding: FortiesPlus, Gender: PreferFemale}, // traditional tea house
}
