package content

// Query is a named content store query. Name identifies the projection for
// backends that do not evaluate GROQ.
type Query struct {
	Name string
	GROQ string
}

// Params are substituted into a query as $name values.
type Params map[string]any

const (
	QueryNameTranslations  = "translations"
	QueryNameServices      = "services"
	QueryNameProjects      = "projects"
	QueryNameProjectBySlug = "projectBySlug"
	QueryNameCategories    = "categories"
	QueryNameTestimonials  = "testimonials"
	QueryNameHomepage      = "homepage"
)

var TranslationsQuery = Query{
	Name: QueryNameTranslations,
	GROQ: `*[_type == "translations" && language == $language][0] {
  navigation,
  hero,
  services,
  projects,
  testimonials,
  contact,
  footer
}`,
}

var ServicesQuery = Query{
	Name: QueryNameServices,
	GROQ: `*[_type == "service"] | order(order asc) {
  _id,
  title,
  slug,
  description,
  icon,
  features,
  image {
    asset->
  }
}`,
}

var ProjectsQuery = Query{
	Name: QueryNameProjects,
	GROQ: `*[_type == "project"] | order(_createdAt desc) {
  _id,
  title,
  slug,
  category->{
    _id,
    name,
    slug
  },
  description,
  mainImage {
    asset->
  },
  gallery[]{
    asset->
  },
  client,
  date,
  tags,
  content
}`,
}

var ProjectBySlugQuery = Query{
	Name: QueryNameProjectBySlug,
	GROQ: `*[_type == "project" && slug.current == $slug][0] {
  _id,
  title,
  slug,
  category->{
    _id,
    name,
    slug
  },
  description,
  mainImage {
    asset->
  },
  gallery[]{
    asset->
  },
  client,
  date,
  tags,
  content,
  results,
  testimonial
}`,
}

var CategoriesQuery = Query{
	Name: QueryNameCategories,
	GROQ: `*[_type == "category"] | order(order asc) {
  _id,
  name,
  slug
}`,
}

var TestimonialsQuery = Query{
	Name: QueryNameTestimonials,
	GROQ: `*[_type == "testimonial"] | order(_createdAt desc) {
  _id,
  name,
  position,
  company,
  content,
  avatar {
    asset->
  }
}`,
}

var HomepageQuery = Query{
	Name: QueryNameHomepage,
	GROQ: `*[_type == "homepage"][0] {
  hero {
    title,
    subtitle,
    image {
      asset->
    }
  },
  featuredServices[]->{
    _id,
    title,
    slug,
    description,
    icon
  },
  featuredProjects[]->{
    _id,
    title,
    slug,
    category->{name},
    description,
    mainImage {
      asset->
    }
  },
  featuredTestimonials[]->{
    _id,
    name,
    position,
    company,
    content,
    avatar {
      asset->
    }
  }
}`,
}
