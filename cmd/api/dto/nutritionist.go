package dto

// NutritionistDTO는 영양사 디렉터리 항목이다. 사용자 계정 정보와 조인된다.
type NutritionistDTO struct {
	ID              string   `json:"id" example:"665f1c2ab1e4a2d3c4e5f603"`
	UserID          string   `json:"user_id" example:"665f1c2ab1e4a2d3c4e5f602"`
	Name            string   `json:"name" example:"Dana Park"`
	Email           string   `json:"email" example:"dana@example.com"`
	Bio             string   `json:"bio" example:"Cardiac nutrition specialist"`
	Specialties     []string `json:"specialties"`
	YearsExperience int      `json:"years_experience" example:"8"`
	Rating          float64  `json:"rating" example:"4.7"`
}

// NutritionistListResponseDTO는 /nutritionists 응답이다.
type NutritionistListResponseDTO struct {
	Items []NutritionistDTO `json:"items"`
}

// NutritionistProfileRequestDTO는 /nutritionists/profile 요청 바디이다.
// 영양사 본인의 디렉터리 프로필을 생성하거나 갱신한다.
type NutritionistProfileRequestDTO struct {
	Bio             string   `json:"bio" example:"Cardiac nutrition specialist"`
	Specialties     []string `json:"specialties"`
	YearsExperience int      `json:"years_experience" example:"8"`
	Rating          float64  `json:"rating" example:"4.7"`
}
